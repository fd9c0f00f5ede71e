// Package tokens holds the six design-token modules that make up a theme:
// palette, typography, spacing, breakpoints, shadows and shape.
//
// Each module is an independent leaf. Its Default constructor returns a fresh
// value on every call and never consults another module.
package tokens

// ColorCategory is a semantic colour slot. Only Main is required; the
// remaining shades are derived when left empty.
type ColorCategory struct {
	Main         string `yaml:"main" json:"main"`
	Light        string `yaml:"light,omitempty" json:"light,omitempty"`
	Dark         string `yaml:"dark,omitempty" json:"dark,omitempty"`
	ContrastText string `yaml:"contrastText,omitempty" json:"contrastText,omitempty"`
}

// Resolved reports whether every shade of the category is populated.
func (c ColorCategory) Resolved() bool {
	return c.Main != "" && c.Light != "" && c.Dark != "" && c.ContrastText != ""
}

// Background describes surface colours.
type Background struct {
	Default string `yaml:"default" json:"default"`
	Paper   string `yaml:"paper" json:"paper"`
}

// Text describes the text colour hierarchy.
type Text struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Disabled  string `yaml:"disabled" json:"disabled"`
}

// Palette is the colour token module.
type Palette struct {
	Primary    ColorCategory `yaml:"primary" json:"primary"`
	Secondary  ColorCategory `yaml:"secondary" json:"secondary"`
	Error      ColorCategory `yaml:"error" json:"error"`
	Warning    ColorCategory `yaml:"warning" json:"warning"`
	Info       ColorCategory `yaml:"info" json:"info"`
	Success    ColorCategory `yaml:"success" json:"success"`
	Background Background    `yaml:"background" json:"background"`
	Text       Text          `yaml:"text" json:"text"`
}

// CategoryNames lists the semantic colour categories in declaration order.
var CategoryNames = []string{"primary", "secondary", "error", "warning", "info", "success"}

// Category returns the category stored under name, or nil when name is not
// one of CategoryNames.
func (p *Palette) Category(name string) *ColorCategory {
	switch name {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "error":
		return &p.Error
	case "warning":
		return &p.Warning
	case "info":
		return &p.Info
	case "success":
		return &p.Success
	default:
		return nil
	}
}

// DefaultPalette returns the library colour defaults. Categories carry only
// their main colour.
func DefaultPalette() Palette {
	return Palette{
		Primary:   ColorCategory{Main: "#1976d2"},
		Secondary: ColorCategory{Main: "#9c27b0"},
		Error:     ColorCategory{Main: "#d32f2f"},
		Warning:   ColorCategory{Main: "#ed6c02"},
		Info:      ColorCategory{Main: "#0288d1"},
		Success:   ColorCategory{Main: "#2e7d32"},
		Background: Background{
			Default: "#fff",
			Paper:   "#fff",
		},
		Text: Text{
			Primary:   "rgba(0, 0, 0, 0.87)",
			Secondary: "rgba(0, 0, 0, 0.6)",
			Disabled:  "rgba(0, 0, 0, 0.38)",
		},
	}
}
