package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dshills/prreview/internal/providers"
	"github.com/dshills/prreview/internal/redact"
)

// Generator produces review text through an LLM provider.
type Generator struct {
	provider      providers.Reviewer
	redactSecrets bool
	logger        *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRedaction scrubs secrets from the diff before it is sent.
func WithRedaction(enabled bool) GeneratorOption {
	return func(g *Generator) { g.redactSecrets = enabled }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a Generator backed by p.
func NewGenerator(p providers.Reviewer, opts ...GeneratorOption) *Generator {
	g := &Generator{provider: p, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the provider to review snap and returns the first
// completion's text. Every failure is returned as a *GenerationError.
func (g *Generator) Generate(ctx context.Context, snap Snapshot) (string, error) {
	diff := snap.Diff
	if g.redactSecrets {
		res := redact.Scrub(diff)
		if n := res.Total(); n > 0 {
			g.logger.Info("redacted secrets from diff", "count", n, "kinds", res.Kinds())
		}
		diff = res.Text
	}

	req := providers.ReviewRequest{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildUserPrompt(snap, diff),
	}
	g.logger.Debug("requesting review", "provider", g.provider.Name(), "prompt_bytes", len(req.UserPrompt))

	resp, err := g.provider.Review(ctx, req)
	if err != nil {
		return "", &GenerationError{Provider: g.provider.Name(), Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", &GenerationError{Provider: g.provider.Name(), Err: errors.New("empty completion")}
	}
	g.logger.Debug("review generated", "provider", g.provider.Name(), "tokens", resp.TokensUsed)
	return resp.Content, nil
}
