package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/app"
	"github.com/thenoetrevino/hirepaso/internal/tui"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// shutdownGrace bounds how long the program gets to exit after a signal
const shutdownGrace = 5 * time.Second

// Launch runs the board TUI for one vacancy until the user quits or the
// process is signalled.
func Launch(ctx context.Context, a *app.App, vacancyID types.VacancyID) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if addr := a.Config.MetricsAddr; addr != "" {
		go func() {
			if err := a.Metrics.Serve(ctx, addr); err != nil {
				slog.Error("metrics endpoint stopped", "addr", addr, "error", err)
			}
		}()
	}

	ctrl := a.NewController()
	// results still in flight after exit are discarded
	defer ctrl.Close()

	model := tui.InitialModel(ctx, ctrl, a.Config, vacancyID, tui.WithLogger(a.Logger))
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		// a signal kills the program through its context
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit in time")
		}
	}

	return nil
}
