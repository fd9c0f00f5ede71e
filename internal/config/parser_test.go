package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, tree merge.Tree, err error)
	}{
		{
			name: "yaml override is parsed",
			file: "brand.yaml",
			contents: `palette:
  primary:
    main: "#ff5722"
spacing: 4
`,
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.NoError(t, err)
				main, ok := tree.Lookup("palette", "primary", "main")
				require.True(t, ok)
				assert.Equal(t, "#ff5722", main)
				assert.Equal(t, 4, tree["spacing"])
			},
		},
		{
			name:     "json override is parsed",
			file:     "brand.json",
			contents: "{\n\t\"shape\": {\"borderRadius\": 0},\n\t\"useCustomProperties\": true\n}\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.NoError(t, err)
				radius, ok := tree.Lookup("shape", "borderRadius")
				require.True(t, ok)
				assert.EqualValues(t, 0, radius)
				assert.Equal(t, true, tree["useCustomProperties"])
			},
		},
		{
			name:     "explicit null is preserved",
			file:     "null.yaml",
			contents: "palette:\n  primary: null\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.NoError(t, err)
				value, ok := tree.Lookup("palette", "primary")
				require.True(t, ok)
				assert.Nil(t, value)
			},
		},
		{
			name:     "empty file is an empty override",
			file:     "empty.yaml",
			contents: "\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.NoError(t, err)
				assert.Empty(t, tree)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			file:     "broken.yaml",
			contents: "palette:\n  primary:\n    main: \"#fff\"\n  secondary: [\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.Error(t, err)
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "invalid json returns parse error with line",
			file:     "broken.json",
			contents: "{\n  \"spacing\": 8,\n  \"shape\": }\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.Error(t, err)
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "sequence at top level is rejected",
			file:     "list.yaml",
			contents: "- palette\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.Error(t, err)
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "must be a mapping")
			},
		},
		{
			name:     "unknown key returns shape error",
			file:     "typo.yaml",
			contents: "palette:\n  primray:\n    main: \"#fff\"\n",
			assert: func(t *testing.T, tree merge.Tree, err error) {
				require.Error(t, err)
				var shapeErr *themeerrors.ThemeShapeError
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, "palette.primray", shapeErr.Path)
				assert.Contains(t, err.Error(), "typo.yaml")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.contents)
			tree, err := LoadOverride(path)
			tc.assert(t, tree, err)
		})
	}
}

func TestLoadOverrideMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadOverride(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverridesLayersInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", "palette:\n  primary:\n    main: \"#111111\"\n  secondary:\n    main: \"#222222\"\n")
	brand := writeFile(t, dir, "brand.yaml", "palette:\n  primary:\n    main: \"#333333\"\n")

	tree, err := LoadOverrides(base, brand)
	require.NoError(t, err)

	primary, _ := tree.Lookup("palette", "primary", "main")
	secondary, _ := tree.Lookup("palette", "secondary", "main")
	assert.Equal(t, "#333333", primary)
	assert.Equal(t, "#222222", secondary)

	empty, err := LoadOverrides()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(os.ErrNotExist))
}
