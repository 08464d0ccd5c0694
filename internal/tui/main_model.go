// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type tab int

const (
	tabNotes tab = iota
	tabTrash
)

// undoTickInterval is how often the undo countdown repaints. The actual
// deadline is enforced server-side; a late tick cannot extend the window.
const undoTickInterval = 250 * time.Millisecond

type mainModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	logger *logger.Logger

	theme Theme

	tab     tab
	notes   []models.Note
	trash   []models.Note
	idx     map[tab]int
	loading bool
	spinner spinner.Model

	adding      bool
	titleInput  textinput.Model
	contentArea textarea.Model
	addFocus    int
	addErr      string
	addSaving   bool

	undoExpiresAt time.Time

	// events is the server's live feed; mutations made by other clients of
	// the same server arrive here
	events <-chan models.NoteEvent

	status string
	errMsg string
}

func newMainModel(ctx context.Context, server adapter.ServerAdapter, theme Theme, logger *logger.Logger) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainModel{
		ctx:     ctx,
		server:  server,
		logger:  logger,
		theme:   theme,
		idx:     map[tab]int{tabNotes: 0, tabTrash: 0},
		loading: true,
		spinner: s,
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdLoadNotes(false),
		m.cmdLoadNotes(true),
		m.cmdOpenEventStream(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.addSaving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		if msg.trash {
			m.trash = msg.notes
		} else {
			m.notes = msg.notes
		}
		m.clampCursor()
		return m, nil

	case createDoneMsg:
		m.addSaving = false
		if msg.err != nil {
			m.addErr = msg.err.Error()
			return m, nil
		}
		m.resetAddForm()
		m.status = "Note added: " + msg.note.Title
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotes(false))

	case transitionDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.trashed {
			m.status = "Note moved to trash"
		} else {
			m.status = "Note restored"
		}
		m.errMsg = ""
		m.undoExpiresAt = msg.expiresAt
		m.loading = true
		return m, tea.Batch(
			m.spinner.Tick,
			m.cmdLoadNotes(false),
			m.cmdLoadNotes(true),
			m.cmdUndoTick(),
		)

	case purgeDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Note permanently deleted"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotes(false), m.cmdLoadNotes(true))

	case undoDoneMsg:
		m.undoExpiresAt = time.Time{}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Undone"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotes(false), m.cmdLoadNotes(true))

	case undoTickMsg:
		if m.undoLive() {
			return m, m.cmdUndoTick()
		}
		m.undoExpiresAt = time.Time{}
		return m, nil

	case eventStreamMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("event stream unavailable")
			m.status = "Live updates unavailable"
			return m, nil
		}
		m.events = msg.events
		return m, m.cmdWaitForEvent()

	case serverEventMsg:
		cmds := []tea.Cmd{m.cmdWaitForEvent()}
		if msg.Kind == models.NoteCreated {
			cmds = append(cmds, m.cmdLoadNotes(false))
		} else {
			// the remaining transitions move or remove a note, which can
			// touch both partitions
			cmds = append(cmds, m.cmdLoadNotes(false), m.cmdLoadNotes(true))
		}
		return m, tea.Batch(cmds...)

	case eventStreamClosedMsg:
		m.events = nil
		return m, nil
	}

	if m.adding {
		return m.updateAddForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.tab):
		if m.tab == tabNotes {
			m.tab = tabTrash
		} else {
			m.tab = tabNotes
		}

	case key.Matches(keyMsg, keys.up):
		if m.idx[m.tab] > 0 {
			m.idx[m.tab]--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx[m.tab] < len(m.currentList())-1 {
			m.idx[m.tab]++
		}

	case key.Matches(keyMsg, keys.newNote):
		m.startAddForm()
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotes(false), m.cmdLoadNotes(true))

	case key.Matches(keyMsg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		if m.tab == tabTrash {
			return m, m.cmdPurge(note.ID)
		}
		return m, m.cmdSoftDelete(note.ID)

	case key.Matches(keyMsg, keys.restore):
		if m.tab != tabTrash {
			return m, nil
		}
		note, ok := m.current()
		if !ok {
			m.status = "Trash is empty"
			return m, nil
		}
		return m, m.cmdRestore(note.ID)

	case key.Matches(keyMsg, keys.undo):
		if !m.undoLive() {
			m.status = "Nothing to undo"
			return m, nil
		}
		return m, m.cmdUndo()

	case key.Matches(keyMsg, keys.copy):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"

	case key.Matches(keyMsg, keys.theme):
		m.theme = m.theme.toggle()
	}

	return m, nil
}

func (m *mainModel) startAddForm() {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Content"
	content.SetWidth(50)
	content.SetHeight(6)

	m.adding = true
	m.titleInput = title
	m.contentArea = content
	m.addFocus = 0
	m.addErr = ""
	m.status = ""
}

func (m *mainModel) resetAddForm() {
	m.adding = false
	m.addSaving = false
	m.addErr = ""
}

func (m mainModel) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetAddForm()
			return m, nil

		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(keyMsg, keys.tab):
			m.switchAddFocus()
			return m, nil

		// enter on the title moves to the content; inside the content it
		// inserts a newline, so submission is an explicit key
		case key.Matches(keyMsg, keys.enter) && m.addFocus == 0:
			m.switchAddFocus()
			return m, nil

		case key.Matches(keyMsg, keys.submit):
			return m.submitAddForm()
		}
	}

	var cmd tea.Cmd
	if m.addFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m *mainModel) switchAddFocus() {
	if m.addFocus == 0 {
		m.addFocus = 1
		m.titleInput.Blur()
		m.contentArea.Focus()
		return
	}
	m.addFocus = 0
	m.contentArea.Blur()
	m.titleInput.Focus()
}

func (m mainModel) submitAddForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	content := strings.TrimSpace(m.contentArea.Value())
	if title == "" {
		m.addErr = "title must not be blank"
		return m, nil
	}
	if content == "" {
		m.addErr = "content must not be blank"
		return m, nil
	}

	m.addErr = ""
	m.addSaving = true
	return m, tea.Batch(m.spinner.Tick, m.cmdCreate(title, content))
}

func (m mainModel) currentList() []models.Note {
	if m.tab == tabTrash {
		return m.trash
	}
	return m.notes
}

func (m mainModel) current() (models.Note, bool) {
	list := m.currentList()
	idx := m.idx[m.tab]
	if len(list) == 0 || idx < 0 || idx >= len(list) {
		return models.Note{}, false
	}
	return list[idx], true
}

func (m *mainModel) clampCursor() {
	for _, t := range []tab{tabNotes, tabTrash} {
		size := len(m.notes)
		if t == tabTrash {
			size = len(m.trash)
		}
		if m.idx[t] >= size {
			m.idx[t] = size - 1
		}
		if m.idx[t] < 0 {
			m.idx[t] = 0
		}
	}
}

func (m mainModel) undoLive() bool {
	return !m.undoExpiresAt.IsZero() && time.Now().Before(m.undoExpiresAt)
}

func (m mainModel) undoRemaining() time.Duration {
	return time.Until(m.undoExpiresAt)
}
