package color

import (
	"errors"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

// Derive fills the empty shades of category from its main colour. Shades that
// are already set must parse and are kept verbatim. Main must always parse.
// Parse failures are ColorFormatErrors whose Path names the shade.
func Derive(category tokens.ColorCategory, tonalOffset, contrastThreshold float64) (tokens.ColorCategory, error) {
	if _, err := Parse(category.Main); err != nil {
		return tokens.ColorCategory{}, atShade("main", err)
	}
	explicit := []struct{ shade, value string }{
		{"light", category.Light},
		{"dark", category.Dark},
		{"contrastText", category.ContrastText},
	}
	for _, e := range explicit {
		if e.value == "" {
			continue
		}
		if _, err := Parse(e.value); err != nil {
			return tokens.ColorCategory{}, atShade(e.shade, err)
		}
	}

	var err error
	if category.Light == "" {
		if category.Light, err = Lighten(category.Main, tonalOffset); err != nil {
			return tokens.ColorCategory{}, err
		}
	}
	if category.Dark == "" {
		if category.Dark, err = Darken(category.Main, tonalOffset); err != nil {
			return tokens.ColorCategory{}, err
		}
	}
	if category.ContrastText == "" {
		if category.ContrastText, err = ContrastText(category.Main, contrastThreshold); err != nil {
			return tokens.ColorCategory{}, err
		}
	}
	return category, nil
}

func atShade(shade string, err error) error {
	var colorErr *themeerrors.ColorFormatError
	if errors.As(err, &colorErr) {
		return themeerrors.NewColorFormatError(shade, colorErr.Value, colorErr.Err)
	}
	return err
}
