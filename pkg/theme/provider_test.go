package theme

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

func TestNewProviderDefaults(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(nil)
	require.NoError(t, err)
	assert.Equal(t, AssembleDefaults(), p.Theme())
	assert.Equal(t, AssembleDefaults().Tree(), p.Tokens())
}

func TestNewProviderExplicitTheme(t *testing.T) {
	t.Parallel()

	th := customPropertiesTheme(t)
	p, err := NewProvider(&th)
	require.NoError(t, err)
	assert.Equal(t, th, p.Theme())

	main, ok := p.Tokens().Lookup("palette", "primary", "main")
	require.True(t, ok)
	assert.IsType(t, Ref{}, main)
}

func TestNewProviderRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	th := AssembleDefaults()
	th.Breakpoints.Sm = 0

	_, err := NewProvider(&th)
	require.Error(t, err)

	var shapeErr *themeerrors.ThemeShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "breakpoints.sm", shapeErr.Path)
}

func TestNewProviderRejectsUnresolvedPalette(t *testing.T) {
	t.Parallel()

	th := AssembleDefaults()
	th.Palette.Warning.Dark = ""

	_, err := NewProvider(&th)
	require.Error(t, err)

	var shapeErr *themeerrors.ThemeShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "palette.warning", shapeErr.Path)
}

func TestProviderApply(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p, err := NewProvider(nil, WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	applied, err := p.Apply(merge.Tree{"palette": merge.Tree{"primary": merge.Tree{"main": "#000000"}}})
	require.NoError(t, err)
	assert.Equal(t, "#000000", applied.Palette.Primary.Main)
	assert.Equal(t, applied, p.Theme())
	assert.Contains(t, buf.String(), "theme replaced")

	_, err = p.Apply(merge.Tree{"palette": merge.Tree{"bogus": merge.Tree{}}})
	require.Error(t, err)
	assert.Equal(t, applied, p.Theme(), "a rejected override keeps the current theme")
	assert.Contains(t, buf.String(), "theme override rejected")
}

func TestProviderTokensAreCopies(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(nil)
	require.NoError(t, err)

	tokens := p.Tokens()
	tokens["palette"].(merge.Tree)["primary"].(merge.Tree)["main"] = "#000000"

	main, ok := p.Tokens().Lookup("palette", "primary", "main")
	require.True(t, ok)
	assert.Equal(t, "#1976d2", main)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AssembleDefaults(), FromContext(context.Background()))
	_, ok := ProviderFrom(context.Background())
	assert.False(t, ok)

	th, err := CreateTheme(merge.Tree{"spacing": 4})
	require.NoError(t, err)
	p, err := NewProvider(&th)
	require.NoError(t, err)

	ctx := WithProvider(context.Background(), p)
	got, ok := ProviderFrom(ctx)
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, th, FromContext(ctx))

	p.SetTheme(AssembleDefaults())
	assert.Equal(t, AssembleDefaults(), FromContext(ctx), "consumers see swaps through the context")
}

func TestProviderConcurrentAccess(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(nil)
	require.NoError(t, err)
	alternate, err := CreateTheme(merge.Tree{"spacing": 12})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				p.SetTheme(alternate)
				return
			}
			p.SetTheme(AssembleDefaults())
		}(i)
		go func() {
			defer wg.Done()
			th := p.Theme()
			assert.Contains(t, []float64{8, 12}, float64(th.Spacing))
			_ = p.Tokens()
		}()
	}
	wg.Wait()
}
