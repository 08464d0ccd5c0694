package client

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{server: server, tui: ui, logger: logger}, nil
}

// Run pings the server until it responds, then hands control to the
// terminal UI and blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.waitForServer(ctx); err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}

	version, err := a.server.ServerVersion(ctx)
	if err == nil {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	return a.tui.Run(ctx)
}

// waitForServer retries the startup ping with exponential backoff so the
// client survives being launched a moment before the server.
func (a *App) waitForServer(ctx context.Context) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := a.server.Ping(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("server ping failed, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
}
