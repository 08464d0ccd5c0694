package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) cmdLoadNotes(trash bool) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		if trash {
			notes, err := server.ListTrash(ctx)
			return notesLoadedMsg{trash: true, notes: notes, err: err}
		}
		notes, err := server.ListActive(ctx)
		return notesLoadedMsg{trash: false, notes: notes, err: err}
	}
}

func (m mainModel) cmdCreate(title, content string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		note, err := server.CreateNote(ctx, title, content)
		return createDoneMsg{note: note, err: err}
	}
}

func (m mainModel) cmdSoftDelete(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		expiresAt, err := server.SoftDelete(ctx, id)
		return transitionDoneMsg{trashed: true, expiresAt: expiresAt, err: err}
	}
}

func (m mainModel) cmdRestore(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		expiresAt, err := server.Restore(ctx, id)
		return transitionDoneMsg{trashed: false, expiresAt: expiresAt, err: err}
	}
}

func (m mainModel) cmdPurge(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return purgeDoneMsg{err: server.Purge(ctx, id)}
	}
}

func (m mainModel) cmdUndo() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return undoDoneMsg{err: server.Undo(ctx)}
	}
}

func (m mainModel) cmdUndoTick() tea.Cmd {
	return tea.Tick(undoTickInterval, func(t time.Time) tea.Msg {
		return undoTickMsg(t)
	})
}

func (m mainModel) cmdOpenEventStream() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		events, err := server.StreamEvents(ctx)
		return eventStreamMsg{events: events, err: err}
	}
}

// cmdWaitForEvent blocks on the live feed; each received event re-enters the
// update loop as a serverEventMsg.
func (m mainModel) cmdWaitForEvent() tea.Cmd {
	events := m.events

	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventStreamClosedMsg{}
		}
		return serverEventMsg(event)
	}
}
