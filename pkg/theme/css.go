package theme

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

// DefaultSelector scopes custom properties to the document root.
const DefaultSelector = ":root"

// Declaration is one custom property and its computed value.
type Declaration struct {
	Property string
	Value    string
}

// Declarations lists the custom properties referenced by t in custom-property
// output mode, sorted by property name.
func Declarations(t Theme) []Declaration {
	var out []Declaration
	collect(References(t.Tree()), &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

func collect(value any, out *[]Declaration) {
	switch v := value.(type) {
	case Ref:
		*out = append(*out, Declaration{Property: v.Property(), Value: v.Fallback})
	case merge.Tree:
		for _, child := range v {
			collect(child, out)
		}
	case []any:
		for _, item := range v {
			collect(item, out)
		}
	}
}

// CSSVariables renders the declarations of t as a rule for selector. An empty
// selector means DefaultSelector.
func CSSVariables(t Theme, selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range Declarations(t) {
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
