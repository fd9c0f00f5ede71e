// Package diff compares two theme trees, either leaf by leaf or as rendered
// text.
package diff

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Kind classifies a leaf change.
type Kind string

const (
	Added    Kind = "added"
	Removed  Kind = "removed"
	Modified Kind = "modified"
)

// Change is one leaf that differs between two trees.
type Change struct {
	Path   string
	Kind   Kind
	Before any
	After  any
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s: %v", c.Path, c.After)
	case Removed:
		return fmt.Sprintf("- %s: %v", c.Path, c.Before)
	default:
		return fmt.Sprintf("~ %s: %v -> %v", c.Path, c.Before, c.After)
	}
}

// Changes lists the leaves that differ between before and after, sorted by
// path. Mappings are compared key by key; sequences element by element.
func Changes(before, after merge.Tree) []Change {
	var changes []Change
	compare("", before, after, &changes)
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}

func compare(path string, before, after any, changes *[]Change) {
	beforeTree, beforeIsTree := merge.AsTree(before)
	afterTree, afterIsTree := merge.AsTree(after)
	if beforeIsTree && afterIsTree {
		for key, value := range beforeTree {
			next, present := afterTree[key]
			if !present {
				*changes = append(*changes, Change{Path: join(path, key), Kind: Removed, Before: value})
				continue
			}
			compare(join(path, key), value, next, changes)
		}
		for key, value := range afterTree {
			if _, present := beforeTree[key]; !present {
				*changes = append(*changes, Change{Path: join(path, key), Kind: Added, After: value})
			}
		}
		return
	}

	beforeSeq, beforeIsSeq := before.([]any)
	afterSeq, afterIsSeq := after.([]any)
	if beforeIsSeq && afterIsSeq {
		for i := 0; i < len(beforeSeq) || i < len(afterSeq); i++ {
			indexed := path + "[" + strconv.Itoa(i) + "]"
			switch {
			case i >= len(afterSeq):
				*changes = append(*changes, Change{Path: indexed, Kind: Removed, Before: beforeSeq[i]})
			case i >= len(beforeSeq):
				*changes = append(*changes, Change{Path: indexed, Kind: Added, After: afterSeq[i]})
			default:
				compare(indexed, beforeSeq[i], afterSeq[i], changes)
			}
		}
		return
	}

	if !sameLeaf(before, after) {
		*changes = append(*changes, Change{Path: path, Kind: Modified, Before: before, After: after})
	}
}

// sameLeaf treats numbers of different Go types as equal when their values
// match, since decoded YAML and JSON disagree on int versus float.
func sameLeaf(a, b any) bool {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// GenerateUnifiedDiff renders a line-based diff between expected and actual.
// It returns an empty string when both are identical and truncates output
// beyond 10,000 lines.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	expectedChars, actualChars, lineArray := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffMain(expectedChars, actualChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
