package theme

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

// referenceRoots are the top-level keys whose leaves become custom-property
// references. Spacing and breakpoints stay numeric for layout arithmetic.
var referenceRoots = []string{"palette", "typography", "shadows", "shape"}

// Ref stands in for a token leaf in custom-property output. Fallback is the
// computed value.
type Ref struct {
	Name     string
	Fallback string
}

// Property returns the custom-property name, e.g. "--palette-primary-main".
func (r Ref) Property() string {
	return "--" + r.Name
}

func (r Ref) String() string {
	return fmt.Sprintf("var(%s, %s)", r.Property(), r.Fallback)
}

// MarshalYAML renders the reference as its var() expression.
func (r Ref) MarshalYAML() (any, error) {
	return r.String(), nil
}

// MarshalJSON renders the reference as its var() expression.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// ApplyOutputMode renders t as a tree. With UseCustomProperties unset the
// tree holds the computed values; otherwise every leaf under palette,
// typography, shadows and shape is replaced by a Ref.
func ApplyOutputMode(t Theme) merge.Tree {
	tree := t.Tree()
	if !t.UseCustomProperties {
		return tree
	}
	return References(tree)
}

// References replaces the reference-eligible leaves of tree with Refs named
// after their path. Leaves that are already Refs and nil values are kept, so
// applying it twice gives the same result. tree is not modified.
func References(tree merge.Tree) merge.Tree {
	if tree == nil {
		return nil
	}
	out := merge.Clone(tree)
	for _, root := range referenceRoots {
		value, ok := out[root]
		if !ok {
			continue
		}
		out[root] = reference([]string{root}, value)
	}
	return out
}

func reference(path []string, value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case Ref:
		return v
	case merge.Tree, map[string]any:
		node, _ := merge.AsTree(v)
		out := make(merge.Tree, len(node))
		for key, child := range node {
			out[key] = reference(appendPath(path, key), child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = reference(appendPath(path, strconv.Itoa(i)), item)
		}
		return out
	default:
		return Ref{Name: refName(path), Fallback: formatLeaf(v)}
	}
}

func appendPath(path []string, segment string) []string {
	next := make([]string, len(path), len(path)+1)
	copy(next, path)
	return append(next, segment)
}

// refName joins path segments with hyphens, splitting camelCase words:
// palette, primary, contrastText becomes "palette-primary-contrast-text".
func refName(path []string) string {
	parts := make([]string, len(path))
	for i, segment := range path {
		parts[i] = kebab(segment)
	}
	return strings.Join(parts, "-")
}

func kebab(segment string) string {
	var b strings.Builder
	for i, r := range segment {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatLeaf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
