// Package color derives the light, dark and contrast shades of a colour
// category from its main colour.
//
// Tonal offsets interpolate lightness in HSL space. Contrast decisions use
// WCAG relative luminance.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

const (
	// DefaultTonalOffset is the fraction by which light and dark shades move
	// away from main.
	DefaultTonalOffset = 0.2
	// DefaultContrastThreshold is the minimum contrast ratio against white
	// for white text to be chosen. A ratio equal to the threshold picks white.
	DefaultContrastThreshold = 3.0

	// LightText is chosen over dark backgrounds.
	LightText = "#fff"
	// DarkText is chosen over light backgrounds.
	DarkText = "rgba(0, 0, 0, 0.87)"
)

// ErrUnsupportedNotation is wrapped by every parse failure.
var ErrUnsupportedNotation = errors.New("expected #rgb, #rrggbb, rgb() or rgba()")

var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d*\.?\d+)\s*\)$`)
	white       = colorful.Color{R: 1, G: 1, B: 1}
)

// RGBA is a parsed colour with straight alpha.
type RGBA struct {
	colorful.Color
	Alpha float64
}

// String renders opaque colours as #rrggbb and translucent ones as rgba().
func (c RGBA) String() string {
	clamped := c.Clamped()
	if c.Alpha >= 1 {
		return clamped.Hex()
	}
	r, g, b := clamped.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

// Parse reads a hex, rgb() or rgba() colour string.
func Parse(value string) (RGBA, error) {
	s := strings.TrimSpace(value)

	if hexPattern.MatchString(s) {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return RGBA{}, themeerrors.NewColorFormatError("", value, err)
		}
		return RGBA{Color: c, Alpha: 1}, nil
	}

	lower := strings.ToLower(s)
	m := rgbPattern.FindStringSubmatch(lower)
	if m == nil {
		m = rgbaPattern.FindStringSubmatch(lower)
	}
	if m == nil {
		return RGBA{}, themeerrors.NewColorFormatError("", value, ErrUnsupportedNotation)
	}

	var channels [3]float64
	for i := range channels {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return RGBA{}, themeerrors.NewColorFormatError("", value, fmt.Errorf("channel %q out of range: %w", m[i+1], ErrUnsupportedNotation))
		}
		channels[i] = float64(n) / 255
	}

	alpha := 1.0
	if len(m) > 4 {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a > 1 {
			return RGBA{}, themeerrors.NewColorFormatError("", value, fmt.Errorf("alpha %q out of range: %w", m[4], ErrUnsupportedNotation))
		}
		alpha = a
	}

	return RGBA{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Alpha: alpha}, nil
}

// Hex renders value as #rrggbb, discarding alpha.
func Hex(value string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// Lighten moves value toward white by offset of its remaining HSL lightness.
func Lighten(value string, offset float64) (string, error) {
	return shift(value, func(l float64) float64 { return l + (1-l)*offset })
}

// Darken moves value toward black by offset of its HSL lightness.
func Darken(value string, offset float64) (string, error) {
	return shift(value, func(l float64) float64 { return l * (1 - offset) })
}

func shift(value string, lightness func(float64) float64) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	h, s, l := c.Hsl()
	l = math.Max(0, math.Min(1, lightness(l)))
	return RGBA{Color: colorful.Hsl(h, s, l), Alpha: c.Alpha}.String(), nil
}

// Luminance returns the WCAG relative luminance of value, ignoring alpha.
func Luminance(value string) (float64, error) {
	c, err := Parse(value)
	if err != nil {
		return 0, err
	}
	return luminance(c.Color), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colours, from 1 to 21.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return contrast(luminance(ca.Color), luminance(cb.Color)), nil
}

func contrast(la, lb float64) float64 {
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastText picks LightText when the contrast of background against white
// is at least threshold, and DarkText otherwise.
func ContrastText(background string, threshold float64) (string, error) {
	c, err := Parse(background)
	if err != nil {
		return "", err
	}
	if contrast(luminance(c.Color), luminance(white)) >= threshold {
		return LightText, nil
	}
	return DarkText, nil
}
