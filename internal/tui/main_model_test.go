package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestModel(t *testing.T) (mainModel, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)

	return newMainModel(context.Background(), server, darkTheme(), logger.Nop()), server
}

func keyPress(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCmdLoadNotes(t *testing.T) {
	m, server := newTestModel(t)

	active := []models.Note{{ID: "a", Title: "one"}}
	trash := []models.Note{{ID: "b", Title: "two", Deleted: true}}

	server.EXPECT().ListActive(gomock.Any()).Return(active, nil)
	server.EXPECT().ListTrash(gomock.Any()).Return(trash, nil)

	msg := m.cmdLoadNotes(false)()
	loaded, ok := msg.(notesLoadedMsg)
	require.True(t, ok)
	assert.False(t, loaded.trash)
	assert.Equal(t, active, loaded.notes)

	msg = m.cmdLoadNotes(true)()
	loaded, ok = msg.(notesLoadedMsg)
	require.True(t, ok)
	assert.True(t, loaded.trash)
	assert.Equal(t, trash, loaded.notes)
}

func TestUpdate_NotesLoaded(t *testing.T) {
	m, _ := newTestModel(t)

	notes := []models.Note{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}
	updated, _ := m.Update(notesLoadedMsg{notes: notes})
	got := updated.(mainModel)

	assert.False(t, got.loading)
	assert.Equal(t, notes, got.notes)
}

func TestUpdate_NotesLoadedError(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(notesLoadedMsg{err: errors.New("server unreachable")})
	got := updated.(mainModel)

	assert.False(t, got.loading)
	assert.Equal(t, "server unreachable", got.errMsg)
}

func TestUpdate_TabSwitchesPartition(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false

	updated, _ := m.Update(keyPress("tab"))
	got := updated.(mainModel)
	assert.Equal(t, tabTrash, got.tab)

	updated, _ = got.Update(keyPress("tab"))
	got = updated.(mainModel)
	assert.Equal(t, tabNotes, got.tab)
}

func TestUpdate_DeleteKeyDispatchesByTab(t *testing.T) {
	t.Run("active tab soft-deletes", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false
		m.notes = []models.Note{{ID: "note-1", Title: "one"}}

		expiresAt := time.Now().Add(2500 * time.Millisecond)
		server.EXPECT().SoftDelete(gomock.Any(), "note-1").Return(expiresAt, nil)

		_, cmd := m.Update(keyPress("d"))
		require.NotNil(t, cmd)

		msg := cmd()
		done, ok := msg.(transitionDoneMsg)
		require.True(t, ok)
		assert.True(t, done.trashed)
		assert.Equal(t, expiresAt, done.expiresAt)
	})

	t.Run("trash tab purges", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false
		m.tab = tabTrash
		m.trash = []models.Note{{ID: "note-1", Title: "one", Deleted: true}}

		server.EXPECT().Purge(gomock.Any(), "note-1").Return(nil)

		_, cmd := m.Update(keyPress("d"))
		require.NotNil(t, cmd)

		msg := cmd()
		_, ok := msg.(purgeDoneMsg)
		require.True(t, ok)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.loading = false

		updated, cmd := m.Update(keyPress("d"))
		assert.Nil(t, cmd)
		assert.Equal(t, "No notes", updated.(mainModel).status)
	})
}

func TestUpdate_RestoreOnlyInTrash(t *testing.T) {
	t.Run("restore from trash", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false
		m.tab = tabTrash
		m.trash = []models.Note{{ID: "note-1", Deleted: true}}

		server.EXPECT().Restore(gomock.Any(), "note-1").Return(time.Now(), nil)

		_, cmd := m.Update(keyPress("r"))
		require.NotNil(t, cmd)

		msg := cmd()
		done, ok := msg.(transitionDoneMsg)
		require.True(t, ok)
		assert.False(t, done.trashed)
	})

	t.Run("restore key ignored in notes tab", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.loading = false
		m.notes = []models.Note{{ID: "note-1"}}

		_, cmd := m.Update(keyPress("r"))
		assert.Nil(t, cmd)
	})
}

func TestUpdate_TransitionArmsUndoCountdown(t *testing.T) {
	m, _ := newTestModel(t)

	expiresAt := time.Now().Add(2500 * time.Millisecond)
	updated, cmd := m.Update(transitionDoneMsg{trashed: true, expiresAt: expiresAt})
	got := updated.(mainModel)

	assert.Equal(t, expiresAt, got.undoExpiresAt)
	assert.True(t, got.undoLive())
	assert.NotNil(t, cmd)
}

func TestUpdate_UndoKey(t *testing.T) {
	t.Run("live slot triggers undo", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false
		m.undoExpiresAt = time.Now().Add(time.Second)

		server.EXPECT().Undo(gomock.Any()).Return(nil)

		_, cmd := m.Update(keyPress("u"))
		require.NotNil(t, cmd)

		msg := cmd()
		_, ok := msg.(undoDoneMsg)
		require.True(t, ok)
	})

	t.Run("expired slot reports nothing to undo", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.loading = false
		m.undoExpiresAt = time.Now().Add(-time.Second)

		updated, cmd := m.Update(keyPress("u"))
		assert.Nil(t, cmd)
		assert.Equal(t, "Nothing to undo", updated.(mainModel).status)
	})
}

func TestUpdate_ThemeToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false

	updated, _ := m.Update(keyPress("t"))
	got := updated.(mainModel)
	assert.Equal(t, "light", got.theme.name)

	updated, _ = got.Update(keyPress("t"))
	got = updated.(mainModel)
	assert.Equal(t, "dark", got.theme.name)
}

func TestSubmitAddForm_Validation(t *testing.T) {
	m, _ := newTestModel(t)
	m.startAddForm()

	t.Run("blank title rejected locally", func(t *testing.T) {
		m.titleInput.SetValue("   ")
		m.contentArea.SetValue("content")

		updated, cmd := m.submitAddForm()
		assert.Nil(t, cmd)
		assert.Equal(t, "title must not be blank", updated.(mainModel).addErr)
	})

	t.Run("blank content rejected locally", func(t *testing.T) {
		m.titleInput.SetValue("title")
		m.contentArea.SetValue(" \n ")

		updated, cmd := m.submitAddForm()
		assert.Nil(t, cmd)
		assert.Equal(t, "content must not be blank", updated.(mainModel).addErr)
	})
}

func TestUpdate_CreateDoneClosesForm(t *testing.T) {
	m, _ := newTestModel(t)
	m.startAddForm()
	m.addSaving = true

	updated, cmd := m.Update(createDoneMsg{note: models.Note{ID: "note-1", Title: "Groceries"}})
	got := updated.(mainModel)

	assert.False(t, got.adding)
	assert.Equal(t, "Note added: Groceries", got.status)
	assert.NotNil(t, cmd)
}

func TestView_SmokeRender(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false
	m.notes = []models.Note{{ID: "a", Title: "Groceries", Content: "Milk, eggs", CreatedAt: time.Now()}}

	out := m.View()
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Notes (1)")

	m.startAddForm()
	out = m.View()
	assert.Contains(t, out, "New note")
}

func TestUpdate_EventStream(t *testing.T) {
	t.Run("opened stream starts the event pump", func(t *testing.T) {
		m, server := newTestModel(t)

		events := make(chan models.NoteEvent, 1)
		server.EXPECT().StreamEvents(gomock.Any()).Return((<-chan models.NoteEvent)(events), nil)

		msg := m.cmdOpenEventStream()()
		opened, ok := msg.(eventStreamMsg)
		require.True(t, ok)
		require.NoError(t, opened.err)

		updated, cmd := m.Update(opened)
		got := updated.(mainModel)
		require.NotNil(t, got.events)
		require.NotNil(t, cmd)

		events <- models.NoteEvent{Kind: models.NoteSoftDeleted, Note: models.Note{ID: "note-1", Deleted: true}}
		received, ok := cmd().(serverEventMsg)
		require.True(t, ok)
		assert.Equal(t, models.NoteSoftDeleted, received.Kind)
		assert.Equal(t, "note-1", received.Note.ID)
	})

	t.Run("transition event reloads both partitions", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false

		events := make(chan models.NoteEvent)
		close(events)
		m.events = events

		server.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		server.EXPECT().ListTrash(gomock.Any()).Return(nil, nil)

		_, cmd := m.Update(serverEventMsg{Kind: models.NoteSoftDeleted, Note: models.Note{ID: "note-1"}})
		runBatch(t, cmd)
	})

	t.Run("create event reloads the active partition only", func(t *testing.T) {
		m, server := newTestModel(t)
		m.loading = false

		events := make(chan models.NoteEvent)
		close(events)
		m.events = events

		server.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		_, cmd := m.Update(serverEventMsg{Kind: models.NoteCreated, Note: models.Note{ID: "note-1"}})
		runBatch(t, cmd)
	})

	t.Run("failed stream leaves the model usable", func(t *testing.T) {
		m, _ := newTestModel(t)

		updated, cmd := m.Update(eventStreamMsg{err: errors.New("connection refused")})
		got := updated.(mainModel)

		assert.Nil(t, cmd)
		assert.Equal(t, "Live updates unavailable", got.status)
	})

	t.Run("closed stream stops the pump", func(t *testing.T) {
		m, _ := newTestModel(t)
		events := make(chan models.NoteEvent)
		m.events = events

		updated, cmd := m.Update(eventStreamClosedMsg{})
		got := updated.(mainModel)

		assert.Nil(t, cmd)
		assert.Nil(t, got.events)
	})
}

// runBatch executes every command in a batch so the mock expectations fire.
func runBatch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return
	}
	for _, c := range batch {
		c()
	}
}
