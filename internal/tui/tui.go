// Package tui implements the interactive terminal client.
//
// The UI is a single bubbletea model with two list tabs (notes and trash),
// an add-note form, a live undo countdown, and a runtime theme toggle. All
// server calls run as tea commands so the event loop never blocks.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type TUI struct {
	server adapter.ServerAdapter
	theme  Theme

	logger *logger.Logger
}

func New(server adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		server: server,
		theme:  themeByName(cfg.Theme),
		logger: logger,
	}, nil
}

// Run starts the terminal UI and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainModel(ctx, t.server, t.theme, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
