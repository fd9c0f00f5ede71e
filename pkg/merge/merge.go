// Package merge combines theme configuration trees.
//
// A Tree is the dynamic form of a theme: nested mappings with string keys,
// sequences as []any, and scalar leaves. Merging follows three rules:
// mappings merge key by key, everything else (scalars, sequences, nil) is
// replaced by the override, and keys absent from the override are kept.
package merge

import "fmt"

// Tree is a nested string-keyed mapping.
type Tree map[string]any

// Merge returns base with override applied. Neither input is modified.
// Values taken from override are deep-copied; untouched base subtrees are
// shared with the result.
func Merge(base, override Tree) Tree {
	result := make(Tree, len(base)+len(override))
	for key, value := range base {
		result[key] = value
	}

	for key, value := range override {
		baseChild, baseIsTree := AsTree(base[key])
		overrideChild, overrideIsTree := AsTree(value)
		if baseIsTree && overrideIsTree {
			result[key] = Merge(baseChild, overrideChild)
			continue
		}
		result[key] = cloneValue(value)
	}

	return result
}

// Layer folds overrides left to right, so later trees win.
func Layer(trees ...Tree) Tree {
	result := Tree{}
	for _, tree := range trees {
		if tree == nil {
			continue
		}
		result = Merge(result, tree)
	}
	return result
}

// Clone returns a deep copy of tree.
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	out := make(Tree, len(tree))
	for key, value := range tree {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Tree:
		return Clone(v)
	case map[string]any:
		if v == nil {
			return nil
		}
		return Clone(Tree(v))
	case []any:
		if v == nil {
			return nil
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		if v == nil {
			return nil
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out
	default:
		return value
	}
}

// AsTree reports whether value is a non-nil mapping and returns it as a Tree.
func AsTree(value any) (Tree, bool) {
	switch v := value.(type) {
	case Tree:
		return v, v != nil
	case map[string]any:
		return Tree(v), v != nil
	default:
		return nil, false
	}
}

// Lookup walks path through nested mappings. The boolean reports whether the
// final key is present, including when its value is nil.
func (t Tree) Lookup(path ...string) (any, bool) {
	var current any = t
	for _, key := range path {
		node, ok := AsTree(current)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Has reports whether path is present in t.
func (t Tree) Has(path ...string) bool {
	_, ok := t.Lookup(path...)
	return ok
}

// Normalize rewrites decoded YAML or JSON data so every mapping is a Tree and
// every sequence is []any. Non-string mapping keys are formatted as strings.
func Normalize(value any) any {
	switch v := value.(type) {
	case Tree:
		if v == nil {
			return nil
		}
		return normalizeMap(v)
	case map[string]any:
		if v == nil {
			return nil
		}
		return normalizeMap(v)
	case map[any]any:
		if v == nil {
			return nil
		}
		out := make(Tree, len(v))
		for key, child := range v {
			out[fmt.Sprint(key)] = Normalize(child)
		}
		return out
	case []any:
		if v == nil {
			return nil
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	default:
		return value
	}
}

func normalizeMap(m map[string]any) Tree {
	out := make(Tree, len(m))
	for key, child := range m {
		out[key] = Normalize(child)
	}
	return out
}
