package merge

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Kind classifies a schema node.
type Kind int

const (
	KindObject Kind = iota
	KindString
	KindNumber
	KindBool
	KindSequence
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "mapping"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Schema is a closed description of the keys and value kinds a Tree may hold.
type Schema struct {
	Kind   Kind
	Fields map[string]*Schema
	Elem   *Schema
	// Len is the exact length required of a sequence; zero allows any length.
	Len int
}

// SchemaOf derives a schema from a struct type using its yaml tag names.
// Fixed-size arrays become sequences of exactly that length.
func SchemaOf(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		s := &Schema{Kind: KindObject, Fields: make(map[string]*Schema, t.NumField())}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			if name == "-" {
				continue
			}
			child, err := SchemaOf(field.Type)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", t.Name(), field.Name, err)
			}
			s.Fields[name] = child
		}
		return s, nil
	case reflect.Array, reflect.Slice:
		elem, err := SchemaOf(t.Elem())
		if err != nil {
			return nil, err
		}
		s := &Schema{Kind: KindSequence, Elem: elem}
		if t.Kind() == reflect.Array {
			s.Len = t.Len()
		}
		return s, nil
	case reflect.String:
		return &Schema{Kind: KindString}, nil
	case reflect.Bool:
		return &Schema{Kind: KindBool}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Kind: KindInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Kind: KindNumber}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("yaml")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}

// Keys returns the field names of an object schema.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for key := range s.Fields {
		keys = append(keys, key)
	}
	return keys
}

// Validate checks tree against s. Nil values are accepted anywhere, since a
// nil override replaces the default with null.
func (s *Schema) Validate(tree Tree) error {
	return s.validate("", tree)
}

func (s *Schema) validate(path string, value any) error {
	if value == nil {
		return nil
	}

	switch s.Kind {
	case KindObject:
		node, ok := AsTree(value)
		if !ok {
			if isNilMap(value) {
				return nil
			}
			return mismatch(path, s.Kind, value)
		}
		for key, child := range node {
			field, known := s.Fields[key]
			childPath := joinPath(path, key)
			if !known {
				return themeerrors.NewThemeShapeError(childPath, "unrecognized key", nil)
			}
			if err := field.validate(childPath, child); err != nil {
				return err
			}
		}
	case KindSequence:
		items, ok := sequence(value)
		if !ok {
			return mismatch(path, s.Kind, value)
		}
		if s.Len > 0 && len(items) != s.Len {
			return themeerrors.NewThemeShapeError(path, fmt.Sprintf("expected exactly %d entries, got %d", s.Len, len(items)), nil)
		}
		for i, item := range items {
			if err := s.Elem.validate(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case KindString:
		if _, ok := value.(string); !ok {
			return mismatch(path, s.Kind, value)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return mismatch(path, s.Kind, value)
		}
	case KindNumber:
		if !isNumber(value) {
			return mismatch(path, s.Kind, value)
		}
	case KindInteger:
		if !isNumber(value) {
			return mismatch(path, s.Kind, value)
		}
		// JSON decodes every number as float64; only whole values fit.
		if f, ok := asFloat(value); ok && f != math.Trunc(f) {
			return themeerrors.NewThemeShapeError(path, fmt.Sprintf("expected integer, got %v", f), nil)
		}
	}
	return nil
}

func mismatch(path string, want Kind, got any) error {
	return themeerrors.NewThemeShapeError(path, fmt.Sprintf("expected %s, got %T", want, got), nil)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func isNilMap(value any) bool {
	switch v := value.(type) {
	case Tree:
		return v == nil
	case map[string]any:
		return v == nil
	}
	return false
}

func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return items, true
	default:
		return nil, false
	}
}

func isNumber(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func asFloat(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
