package tokens

// DefaultFontFamily is the root font stack repeated on every default variant.
const DefaultFontFamily = `"Roboto", "Helvetica", "Arial", sans-serif`

// Variant is one typography preset.
type Variant struct {
	FontFamily    string  `yaml:"fontFamily" json:"fontFamily"`
	FontSize      string  `yaml:"fontSize" json:"fontSize"`
	FontWeight    int     `yaml:"fontWeight" json:"fontWeight"`
	LineHeight    float64 `yaml:"lineHeight" json:"lineHeight"`
	TextTransform string  `yaml:"textTransform,omitempty" json:"textTransform,omitempty"`
}

// Typography is the type token module.
type Typography struct {
	FontFamily string  `yaml:"fontFamily" json:"fontFamily"`
	H1         Variant `yaml:"h1" json:"h1"`
	H2         Variant `yaml:"h2" json:"h2"`
	H3         Variant `yaml:"h3" json:"h3"`
	H4         Variant `yaml:"h4" json:"h4"`
	H5         Variant `yaml:"h5" json:"h5"`
	H6         Variant `yaml:"h6" json:"h6"`
	Body1      Variant `yaml:"body1" json:"body1"`
	Body2      Variant `yaml:"body2" json:"body2"`
	Caption    Variant `yaml:"caption" json:"caption"`
	Button     Variant `yaml:"button" json:"button"`
}

// VariantNames lists the typography variants in declaration order.
var VariantNames = []string{"h1", "h2", "h3", "h4", "h5", "h6", "body1", "body2", "caption", "button"}

// Variant returns the variant stored under name, or nil for unknown names.
func (t *Typography) Variant(name string) *Variant {
	switch name {
	case "h1":
		return &t.H1
	case "h2":
		return &t.H2
	case "h3":
		return &t.H3
	case "h4":
		return &t.H4
	case "h5":
		return &t.H5
	case "h6":
		return &t.H6
	case "body1":
		return &t.Body1
	case "body2":
		return &t.Body2
	case "caption":
		return &t.Caption
	case "button":
		return &t.Button
	default:
		return nil
	}
}

// DefaultTypography returns the library type scale.
func DefaultTypography() Typography {
	v := func(size string, weight int, lineHeight float64) Variant {
		return Variant{
			FontFamily: DefaultFontFamily,
			FontSize:   size,
			FontWeight: weight,
			LineHeight: lineHeight,
		}
	}

	button := v("0.875rem", 500, 1.75)
	button.TextTransform = "uppercase"

	return Typography{
		FontFamily: DefaultFontFamily,
		H1:         v("6rem", 300, 1.167),
		H2:         v("3.75rem", 300, 1.2),
		H3:         v("3rem", 400, 1.167),
		H4:         v("2.125rem", 400, 1.235),
		H5:         v("1.5rem", 400, 1.334),
		H6:         v("1.25rem", 500, 1.6),
		Body1:      v("1rem", 400, 1.5),
		Body2:      v("0.875rem", 400, 1.43),
		Caption:    v("0.75rem", 400, 1.66),
		Button:     button,
	}
}
