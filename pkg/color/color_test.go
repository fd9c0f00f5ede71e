package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

func TestParseAcceptedNotations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		hex   string
		alpha float64
	}{
		{name: "long hex", input: "#1976d2", hex: "#1976d2", alpha: 1},
		{name: "upper hex", input: "#1976D2", hex: "#1976d2", alpha: 1},
		{name: "short hex", input: "#fff", hex: "#ffffff", alpha: 1},
		{name: "rgb", input: "rgb(255, 0, 0)", hex: "#ff0000", alpha: 1},
		{name: "rgb without spaces", input: "rgb(0,128,0)", hex: "#008000", alpha: 1},
		{name: "rgba", input: "rgba(0, 0, 0, 0.87)", hex: "#000000", alpha: 0.87},
		{name: "surrounding whitespace", input: "  #000000 ", hex: "#000000", alpha: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.hex, c.Clamped().Hex())
			assert.InDelta(t, tc.alpha, c.Alpha, 1e-9)
		})
	}
}

func TestParseRejectsMalformedColors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "blurple", "#12", "#12345g", "#1234567", "rgb(300, 0, 0)", "rgba(0, 0, 0, 1.5)", "hsl(0, 0%, 0%)", "rgb(1, 2, 3, 0.5)", "rgba(1, 2, 3)"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var colorErr *themeerrors.ColorFormatError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, input, colorErr.Value)
		})
	}
}

func TestRGBAString(t *testing.T) {
	t.Parallel()

	opaque, err := Parse("rgb(25, 118, 210)")
	require.NoError(t, err)
	assert.Equal(t, "#1976d2", opaque.String())

	translucent, err := Parse("rgba(0, 0, 0, 0.6)")
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 0, 0, 0.6)", translucent.String())
}

func TestLightenAndDarken(t *testing.T) {
	t.Parallel()

	light, err := Lighten("#000000", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "#333333", light)

	dark, err := Darken("#ffffff", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "#cccccc", dark)

	unchanged, err := Lighten("#ffffff", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", unchanged, "white cannot get lighter")

	keepsAlpha, err := Lighten("rgba(0, 0, 0, 0.5)", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "rgba(51, 51, 51, 0.5)", keepsAlpha)

	_, err = Darken("nope", 0.2)
	require.Error(t, err)
}

func TestLightnessOrdering(t *testing.T) {
	t.Parallel()

	main := "#1976d2"
	light, err := Lighten(main, DefaultTonalOffset)
	require.NoError(t, err)
	dark, err := Darken(main, DefaultTonalOffset)
	require.NoError(t, err)

	lm, err := Luminance(main)
	require.NoError(t, err)
	ll, err := Luminance(light)
	require.NoError(t, err)
	ld, err := Luminance(dark)
	require.NoError(t, err)

	assert.Greater(t, ll, lm)
	assert.Less(t, ld, lm)
}

func TestLuminanceAndContrast(t *testing.T) {
	t.Parallel()

	white, err := Luminance("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white, 1e-9)

	black, err := Luminance("#000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, black, 1e-9)

	ratio, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-6)

	same, err := ContrastRatio("#1976d2", "#1976d2")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-9)

	_, err = ContrastRatio("#fff", "bad")
	require.Error(t, err)
}

func TestContrastText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		background string
		want       string
	}{
		{background: "#000000", want: LightText},
		{background: "#1976d2", want: LightText},
		{background: "#ffffff", want: DarkText},
		{background: "#ffeb3b", want: DarkText},
	}

	for _, tc := range cases {
		t.Run(tc.background, func(t *testing.T) {
			got, err := ContrastText(tc.background, DefaultContrastThreshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveFillsMissingShades(t *testing.T) {
	t.Parallel()

	got, err := Derive(tokens.ColorCategory{Main: "#000000"}, DefaultTonalOffset, DefaultContrastThreshold)
	require.NoError(t, err)
	assert.Equal(t, tokens.ColorCategory{
		Main:         "#000000",
		Light:        "#333333",
		Dark:         "#000000",
		ContrastText: LightText,
	}, got)
	assert.True(t, got.Resolved())
}

func TestDeriveKeepsExplicitShades(t *testing.T) {
	t.Parallel()

	in := tokens.ColorCategory{Main: "#ffffff", Light: "#fafafa", ContrastText: "#111111"}
	got, err := Derive(in, DefaultTonalOffset, DefaultContrastThreshold)
	require.NoError(t, err)
	assert.Equal(t, "#fafafa", got.Light)
	assert.Equal(t, "#cccccc", got.Dark)
	assert.Equal(t, "#111111", got.ContrastText)
}

func TestDeriveRejectsInvalidMain(t *testing.T) {
	t.Parallel()

	_, err := Derive(tokens.ColorCategory{Main: "teal-ish", Light: "#fff", Dark: "#000", ContrastText: "#fff"}, DefaultTonalOffset, DefaultContrastThreshold)
	require.Error(t, err)

	var colorErr *themeerrors.ColorFormatError
	require.ErrorAs(t, err, &colorErr)
	assert.Equal(t, "main", colorErr.Path)
	assert.True(t, errors.Is(err, ErrUnsupportedNotation))
}

func TestDeriveRejectsInvalidExplicitShades(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category tokens.ColorCategory
		path     string
	}{
		{category: tokens.ColorCategory{Main: "#1976d2", Light: "notacolor"}, path: "light"},
		{category: tokens.ColorCategory{Main: "#1976d2", Dark: "rgb(1, 2, 3, 0.5)"}, path: "dark"},
		{category: tokens.ColorCategory{Main: "#1976d2", ContrastText: "white-ish"}, path: "contrastText"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			_, err := Derive(tc.category, DefaultTonalOffset, DefaultContrastThreshold)
			require.Error(t, err)

			var colorErr *themeerrors.ColorFormatError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, tc.path, colorErr.Path)
		})
	}
}

func TestContrastTextAtThresholdPicksLightText(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#1976d2", LightText)
	require.NoError(t, err)

	got, err := ContrastText("#1976d2", ratio)
	require.NoError(t, err)
	assert.Equal(t, LightText, got)
}

func TestDeriveHonoursThreshold(t *testing.T) {
	t.Parallel()

	strict, err := Derive(tokens.ColorCategory{Main: "#1976d2"}, DefaultTonalOffset, 7)
	require.NoError(t, err)
	assert.Equal(t, DarkText, strict.ContrastText, "4.6:1 does not meet a 7:1 threshold")
}
