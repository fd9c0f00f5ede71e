package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("brand.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "brand.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "brand.yaml:7")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestColorFormatErrorIncludesPathAndValue(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unsupported notation")
	err := NewColorFormatError("palette.primary.main", "blurple", underlying)

	var colorErr *ColorFormatError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "palette.primary.main", colorErr.Path)
	require.Equal(t, "blurple", colorErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, `invalid color format: palette.primary.main: "blurple"`, err.Error())
}

func TestColorFormatErrorWithoutPath(t *testing.T) {
	t.Parallel()

	err := NewColorFormatError("", "#12", nil)
	require.Equal(t, `invalid color format: "#12"`, err.Error())
}

func TestThemeShapeErrorIncludesPath(t *testing.T) {
	t.Parallel()

	err := NewThemeShapeError("palette.bogus", "unrecognized key", nil)

	var shapeErr *ThemeShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "palette.bogus", shapeErr.Path)
	require.Contains(t, err.Error(), "unrecognized key")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var colorErr *ColorFormatError
	var shapeErr *ThemeShapeError

	require.Empty(t, parseErr.Error())
	require.Empty(t, colorErr.Error())
	require.Empty(t, shapeErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, colorErr.Unwrap())
	require.Nil(t, shapeErr.Unwrap())
}
