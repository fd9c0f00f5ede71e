package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOverride reads one override file. Files ending in .json are decoded as
// JSON; everything else as YAML. The result is checked against the theme
// schema but not resolved.
func LoadOverride(path string) (merge.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return ParseOverride(path, data)
}

// ParseOverride decodes data read from source. An empty document yields an
// empty tree.
func ParseOverride(source string, data []byte) (merge.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return merge.Tree{}, nil
	}

	var raw any
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, themeerrors.NewParseError(source, jsonLine(data, err), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, themeerrors.NewParseError(source, extractLine(err), err)
		}
	}

	if raw == nil {
		return merge.Tree{}, nil
	}
	tree, ok := merge.Normalize(raw).(merge.Tree)
	if !ok {
		return nil, themeerrors.NewParseError(source, 1, fmt.Errorf("top-level value must be a mapping, got %T", raw))
	}

	schema, err := theme.Schema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(tree); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return tree, nil
}

// LoadOverrides reads every path in order and layers them so later files win.
func LoadOverrides(paths ...string) (merge.Tree, error) {
	trees := make([]merge.Tree, 0, len(paths))
	for _, path := range paths {
		tree, err := LoadOverride(path)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return merge.Layer(trees...), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
