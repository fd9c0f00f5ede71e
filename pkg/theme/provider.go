package theme

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
)

// Provider hands a resolved theme to everything below it. It is safe for
// concurrent use.
type Provider struct {
	mu     sync.RWMutex
	theme  Theme
	tokens merge.Tree
	log    zerolog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger makes the provider report theme changes to log.
func WithLogger(log zerolog.Logger) ProviderOption {
	return func(p *Provider) {
		p.log = log
	}
}

// NewProvider creates a provider for t. A nil t means CreateTheme(nil).
func NewProvider(t *Theme, opts ...ProviderOption) (*Provider, error) {
	p := &Provider{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}

	resolved := AssembleDefaults()
	if t != nil {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		resolved = *t
	}
	p.store(resolved)
	return p, nil
}

// Theme returns the current theme.
func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Tokens returns the current theme rendered in its output mode.
func (p *Provider) Tokens() merge.Tree {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return merge.Clone(p.tokens)
}

// SetTheme replaces the current theme.
func (p *Provider) SetTheme(t Theme) {
	p.mu.Lock()
	p.store(t)
	p.mu.Unlock()
	p.log.Debug().Bool("custom_properties", t.UseCustomProperties).Msg("theme replaced")
}

// Apply resolves override with CreateTheme and makes the result current.
// On error the current theme is kept.
func (p *Provider) Apply(override merge.Tree) (Theme, error) {
	t, err := CreateTheme(override)
	if err != nil {
		p.log.Debug().Err(err).Msg("theme override rejected")
		return Theme{}, err
	}
	p.SetTheme(t)
	return t, nil
}

func (p *Provider) store(t Theme) {
	p.theme = t
	p.tokens = ApplyOutputMode(t)
}

type providerKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// ProviderFrom returns the provider carried by ctx, if any.
func ProviderFrom(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// FromContext returns the theme of the provider carried by ctx, or the
// default theme when there is none.
func FromContext(ctx context.Context) Theme {
	if p, ok := ProviderFrom(ctx); ok {
		return p.Theme()
	}
	return AssembleDefaults()
}
