package agent

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dshills/prreview/internal/config"
	"github.com/dshills/prreview/internal/github"
	"github.com/dshills/prreview/internal/providers"
	"github.com/dshills/prreview/internal/review"
)

// ChangeRequests reads and updates pull requests.
type ChangeRequests interface {
	Fetch(ctx context.Context, number int) (review.Snapshot, error)
	Publish(ctx context.Context, number int, summary string) error
}

// Generator turns a pull request snapshot into review text.
type Generator interface {
	Generate(ctx context.Context, snap review.Snapshot) (string, error)
}

// Session runs one review. It is not safe for concurrent use.
type Session struct {
	DryRun   bool
	Provider string
	Model    string

	changes   ChangeRequests
	generator Generator

	logger   *slog.Logger
	out      io.Writer
	observer func(State)
	state    State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithOutput sets where dry-run publishes are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithObserver registers fn to be called on every state transition.
func WithObserver(fn func(State)) Option {
	return func(s *Session) { s.observer = fn }
}

// NewSession builds a session from cfg. In dry-run mode only substitutes are
// built. In live mode the GitHub client and the provider are both built
// before NewSession returns, and the first missing or invalid setting fails
// construction with a *config.Error.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		DryRun:   cfg.DryRun,
		Provider: cfg.Provider,
		Model:    cfg.Model,
		logger:   slog.Default(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.DryRun {
		s.changes = dryRunChanges{out: s.out}
		s.generator = dryRunGenerator{}
		s.logger.Debug("dry run session", "provider", s.Provider, "model", s.Model)
		return s, nil
	}

	if err := cfg.RequirePlatform(); err != nil {
		return nil, err
	}
	gh, err := github.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL, cfg.Owner, cfg.Repo)
	if err != nil {
		return nil, &config.Error{Variable: config.EnvGitHubAPIURL, Value: cfg.GitHubAPIURL, Reason: err.Error()}
	}
	gh.SetLogger(s.logger)

	if err := cfg.RequireProviderKey(); err != nil {
		return nil, err
	}
	p, err := providers.New(cfg.Provider, cfg.Model, cfg.APIKey(), cfg.BaseURL())
	if err != nil {
		return nil, &config.Error{Variable: config.EnvProvider, Value: cfg.Provider, Reason: err.Error()}
	}

	s.changes = gh
	s.generator = review.NewGenerator(p,
		review.WithRedaction(cfg.RedactSecrets),
		review.WithLogger(s.logger),
	)
	s.logger.Debug("live session", "repo", cfg.Repository(), "provider", s.Provider, "model", s.Model)
	return s, nil
}

// newSession builds a session around the given capabilities.
func newSession(changes ChangeRequests, generator Generator, opts ...Option) *Session {
	s := &Session{
		changes:   changes,
		generator: generator,
		logger:    slog.Default(),
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the state the last Run reached.
func (s *Session) State() State {
	return s.state
}

// Run reviews pull request number: fetch, generate, publish. The first
// failing step ends the run in StateFailed and its error is returned as is.
func (s *Session) Run(ctx context.Context, number int) (*review.Result, error) {
	s.state = StateStart
	s.notify(StateStart)
	s.transition(StateConfigured, number)

	snap, err := s.changes.Fetch(ctx, number)
	if err != nil {
		return nil, s.fail(number, err)
	}
	s.transition(StateFetched, number)

	summary, err := s.generator.Generate(ctx, snap)
	if err != nil {
		return nil, s.fail(number, err)
	}
	s.transition(StateGenerated, number)

	if err := s.changes.Publish(ctx, number, summary); err != nil {
		return nil, s.fail(number, err)
	}
	s.transition(StatePublished, number)

	return &review.Result{Summary: summary, Snapshot: snap}, nil
}

func (s *Session) transition(to State, number int) {
	s.logger.Debug("state transition", "pr", number, "from", s.state.String(), "to", to.String(), "dry_run", s.DryRun)
	s.state = to
	s.notify(to)
}

func (s *Session) notify(st State) {
	if s.observer != nil {
		s.observer(st)
	}
}

func (s *Session) fail(number int, err error) error {
	s.logger.Debug("review failed", "pr", number, "after", s.state.String(), "error", err)
	s.transition(StateFailed, number)
	return err
}
