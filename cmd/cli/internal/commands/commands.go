package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/observability"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/internal/session"
)

type Globals struct {
	Debug   bool
	Version string
	Config  *config.Config
	// Out receives command output; nil means stdout.
	Out io.Writer
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// runtime is one CLI invocation: a session restored from the token file and
// the API facade that session authorizes.
type runtime struct {
	holder *session.Holder
	repos  repository.Repositories
	logger *zap.Logger
	ctx    context.Context
	// ended is set when the session forced a logout while restoring.
	ended bool
}

func (g *Globals) open(ctx context.Context) (*runtime, error) {
	if g.Config == nil {
		return nil, errors.New("configuration not loaded")
	}
	cfg := g.Config

	level := "warn"
	if g.Debug {
		level = "debug"
	}
	logger, err := observability.NewLogger(config.LoggerConfig{Level: level, Output: "stderr"})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	storage, err := persistence.NewFile(cfg.CLI.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open token storage: %w", err)
	}
	client, err := repository.NewClient(cfg.API, logger, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid API configuration: %w", err)
	}

	rt := &runtime{repos: repository.NewRepositories(client), logger: logger}
	holder, err := session.New(ctx, session.Dependencies{
		Storage:   storage,
		Auth:      rt.repos.Auth,
		Codec:     auth.NewCodec(cfg.Auth.RejectExpired),
		Navigator: auth.NavigatorFunc(func(string) { rt.ended = true }),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	rt.holder = holder
	rt.ctx = repository.WithTokenSource(ctx, holder)
	return rt, nil
}

// require fails unless the session holds role.
func (rt *runtime) require(role domain.Role) error {
	if !auth.NewGate(rt.holder, nil).Allow(role) {
		return fmt.Errorf("this command needs a %s session; run `bikehub login` first", role)
	}
	return nil
}

func describe(s domain.Session) string {
	if !s.LoggedIn {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", s.Username, s.Role)
}
