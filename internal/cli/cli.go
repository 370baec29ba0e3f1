package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/hirepaso/internal/app"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/database"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	ctx   context.Context
	owned bool // Close releases App only when this CLI created it
}

type contextKey struct{}

// NewCLI initializes the CLI with the session database and a restored session
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(cfg, db, opts...)
	if err := application.Restore(ctx); err != nil {
		_ = application.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return &CLI{App: application, ctx: ctx, owned: true}, nil
}

// FromApp wraps an existing container owned by the caller
func FromApp(ctx context.Context, a *app.App) *CLI {
	return &CLI{App: a, ctx: ctx}
}

// WithCLI stores a CLI in ctx so commands reuse it instead of opening their own
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored in ctx, or initializes a new one
// from the on-disk configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
		return c, nil
	}
	if ctx == nil {
		return nil, errors.New("nil context")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLI(ctx, cfg)
}

// LoadBoard loads the pipeline for vacancyID into a fresh controller.
// An empty id falls back to the vacancy last opened with this profile.
func (c *CLI) LoadBoard(ctx context.Context, vacancyID string) (*board.Controller, error) {
	if vacancyID == "" {
		vacancyID = c.App.LastVacancy(ctx)
	}
	ctrl := c.App.NewController()
	if err := ctrl.Load(ctx, types.VacancyID(vacancyID)); err != nil {
		return nil, err
	}
	c.App.RememberVacancy(ctx, vacancyID)
	return ctrl, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
