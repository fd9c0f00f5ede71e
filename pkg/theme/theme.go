// Package theme assembles the token modules into a Theme, applies partial
// overrides, and renders the result as literal values or custom-property
// references.
package theme

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokensmith/pkg/color"
	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

// Theme is a fully resolved configuration. It holds no maps or slices, so
// copies never share state.
type Theme struct {
	Palette             tokens.Palette     `yaml:"palette" json:"palette"`
	Typography          tokens.Typography  `yaml:"typography" json:"typography"`
	Spacing             tokens.Spacing     `yaml:"spacing" json:"spacing" validate:"gte=0"`
	Breakpoints         tokens.Breakpoints `yaml:"breakpoints" json:"breakpoints"`
	Shadows             tokens.Shadows     `yaml:"shadows" json:"shadows" validate:"shadow_scale"`
	Shape               tokens.Shape       `yaml:"shape" json:"shape"`
	UseCustomProperties bool               `yaml:"useCustomProperties" json:"useCustomProperties"`
}

var (
	defaultTheme atomic.Pointer[Theme]

	themeSchema = sync.OnceValues(func() (*merge.Schema, error) {
		return merge.SchemaOf(reflect.TypeOf(Theme{}))
	})
)

// Schema returns the closed schema that overrides are checked against.
func Schema() (*merge.Schema, error) {
	return themeSchema()
}

// AssembleDefaults returns the library theme with every palette category
// derived. The result is computed once and then served from a cache; two
// goroutines racing on the first call both store equal values.
func AssembleDefaults() Theme {
	if cached := defaultTheme.Load(); cached != nil {
		return *cached
	}

	t, err := assemble()
	if err != nil {
		panic(fmt.Sprintf("theme: built-in defaults are invalid: %v", err))
	}
	defaultTheme.Store(&t)
	return t
}

func assemble() (Theme, error) {
	t := Theme{
		Palette:     tokens.DefaultPalette(),
		Typography:  tokens.DefaultTypography(),
		Spacing:     tokens.DefaultSpacing(),
		Breakpoints: tokens.DefaultBreakpoints(),
		Shadows:     tokens.DefaultShadows(),
		Shape:       tokens.DefaultShape(),
	}
	if err := t.derivePalette(color.DefaultTonalOffset, color.DefaultContrastThreshold); err != nil {
		return Theme{}, err
	}
	return t, t.Validate()
}

// CreateTheme resolves override against the defaults. A nil or empty override
// returns AssembleDefaults. Errors are *errors.ThemeShapeError for overrides
// that do not fit the token schema and *errors.ColorFormatError for colours
// that cannot be parsed.
func CreateTheme(override merge.Tree) (Theme, error) {
	if len(override) == 0 {
		return AssembleDefaults(), nil
	}

	schema, err := themeSchema()
	if err != nil {
		return Theme{}, fmt.Errorf("build theme schema: %w", err)
	}
	if err := schema.Validate(override); err != nil {
		return Theme{}, err
	}

	defaults := AssembleDefaults()
	override = cascadeFontFamily(merge.Clone(override), defaults.Typography)

	t, err := FromTree(merge.Merge(defaults.Tree(), override))
	if err != nil {
		return Theme{}, err
	}

	resetOverriddenShades(&t.Palette, override)
	if err := t.derivePalette(color.DefaultTonalOffset, color.DefaultContrastThreshold); err != nil {
		return Theme{}, err
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Tree renders t in override form, keyed by the yaml names of its fields.
func (t Theme) Tree() merge.Tree {
	raw, err := yaml.Marshal(t)
	if err != nil {
		panic(fmt.Sprintf("theme: encode tree: %v", err))
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		panic(fmt.Sprintf("theme: decode tree: %v", err))
	}
	tree, _ := merge.Normalize(decoded).(merge.Tree)
	return tree
}

// FromTree decodes a complete tree into a Theme. Keys outside the schema are
// rejected. Colour shades are not derived.
func FromTree(tree merge.Tree) (Theme, error) {
	var t Theme
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "yaml",
		ErrorUnused: true,
		Result:      &t,
	})
	if err != nil {
		return Theme{}, fmt.Errorf("create theme decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(tree)); err != nil {
		return Theme{}, themeerrors.NewThemeShapeError("", "cannot decode theme", err)
	}
	return t, nil
}

// derivePalette fills the missing shades of every semantic category.
// Background and text colours are not derived but must parse.
func (t *Theme) derivePalette(tonalOffset, contrastThreshold float64) error {
	for _, name := range tokens.CategoryNames {
		category := t.Palette.Category(name)
		derived, err := color.Derive(*category, tonalOffset, contrastThreshold)
		if err != nil {
			return withColorPath("palette."+name, err)
		}
		*category = derived
	}

	surfaces := []struct{ path, value string }{
		{"palette.background.default", t.Palette.Background.Default},
		{"palette.background.paper", t.Palette.Background.Paper},
		{"palette.text.primary", t.Palette.Text.Primary},
		{"palette.text.secondary", t.Palette.Text.Secondary},
		{"palette.text.disabled", t.Palette.Text.Disabled},
	}
	for _, surface := range surfaces {
		if _, err := color.Parse(surface.value); err != nil {
			return withColorPath(surface.path, err)
		}
	}
	return nil
}

// withColorPath prefixes the path of a colour error with prefix.
func withColorPath(prefix string, err error) error {
	var colorErr *themeerrors.ColorFormatError
	if errors.As(err, &colorErr) {
		path := prefix
		if colorErr.Path != "" {
			path += "." + colorErr.Path
		}
		return themeerrors.NewColorFormatError(path, colorErr.Value, colorErr.Err)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// resetOverriddenShades clears the shades inherited from the defaults when a
// category's main colour was overridden, so they are derived from the new
// main. Shades the override sets itself are kept.
func resetOverriddenShades(palette *tokens.Palette, override merge.Tree) {
	for _, name := range tokens.CategoryNames {
		if !override.Has("palette", name, "main") {
			continue
		}
		category := palette.Category(name)
		if !override.Has("palette", name, "light") {
			category.Light = ""
		}
		if !override.Has("palette", name, "dark") {
			category.Dark = ""
		}
		if !override.Has("palette", name, "contrastText") {
			category.ContrastText = ""
		}
	}
}

// cascadeFontFamily copies a root typography.fontFamily override onto every
// variant that still uses the default root family and is not pinned by the
// override. override must already be a private copy.
func cascadeFontFamily(override merge.Tree, defaults tokens.Typography) merge.Tree {
	typography, ok := merge.AsTree(override["typography"])
	if !ok {
		return override
	}
	family, ok := typography["fontFamily"].(string)
	if !ok {
		return override
	}

	for _, name := range tokens.VariantNames {
		if defaults.Variant(name).FontFamily != defaults.FontFamily {
			continue
		}

		current, present := typography[name]
		if !present {
			typography[name] = merge.Tree{"fontFamily": family}
			continue
		}

		variant, ok := merge.AsTree(current)
		if !ok {
			// null or already rejected by the schema
			continue
		}
		if _, pinned := variant["fontFamily"]; pinned {
			continue
		}
		variant["fontFamily"] = family
	}

	override["typography"] = typography
	return override
}
