package tui

import (
	"fmt"
	"strings"
)

func (m mainModel) View() string {
	if m.adding {
		return m.theme.app.Render(m.viewAddForm())
	}
	return m.theme.app.Render(m.viewLists())
}

func (m mainModel) viewLists() string {
	var b strings.Builder

	header := m.theme.title.Render("Note Keeper")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	b.WriteString(m.viewTabs() + "\n\n")

	list := m.currentList()
	if len(list) == 0 {
		if m.tab == tabTrash {
			b.WriteString(m.theme.dim.Render("Trash is empty") + "\n")
		} else {
			b.WriteString(m.theme.dim.Render("No notes yet — press n to add one") + "\n")
		}
	} else {
		for i, note := range list {
			line := fmt.Sprintf("%s  %s", note.CreatedAt.Local().Format("2006-01-02 15:04"), note.Title)
			if i == m.idx[m.tab] {
				b.WriteString(m.theme.cursor.Render("> "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	if note, ok := m.current(); ok {
		b.WriteString("\n" + m.theme.dim.Render(previewOf(note.Content)) + "\n")
	}

	b.WriteString("\n" + m.viewStatusLine() + "\n")
	b.WriteString(m.theme.help.Render(m.helpLine()))

	return b.String()
}

func (m mainModel) viewTabs() string {
	notesTab := fmt.Sprintf("Notes (%d)", len(m.notes))
	trashTab := fmt.Sprintf("Trash (%d)", len(m.trash))

	if m.tab == tabNotes {
		return m.theme.tabActive.Render(notesTab) + " " + m.theme.tabIdle.Render(trashTab)
	}
	return m.theme.tabIdle.Render(notesTab) + " " + m.theme.tabActive.Render(trashTab)
}

func (m mainModel) viewStatusLine() string {
	if m.errMsg != "" {
		return m.theme.errText.Render("Error: " + m.errMsg)
	}

	var parts []string
	if m.status != "" {
		parts = append(parts, m.theme.status.Render(m.status))
	}
	if m.undoLive() {
		remaining := m.undoRemaining().Seconds()
		parts = append(parts, m.theme.undoHint.Render(fmt.Sprintf("undo within %.1fs (u)", remaining)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

func (m mainModel) helpLine() string {
	if m.tab == tabTrash {
		return "tab notes  r restore  d delete forever  u undo  c copy  s refresh  t theme  q quit"
	}
	return "tab trash  n new  d delete  u undo  c copy  s refresh  t theme  q quit"
}

func (m mainModel) viewAddForm() string {
	var b strings.Builder

	b.WriteString(m.theme.title.Render("New note") + "\n\n")
	b.WriteString("Title\n" + m.titleInput.View() + "\n\n")
	b.WriteString("Content\n" + m.contentArea.View() + "\n\n")

	if m.addErr != "" {
		b.WriteString(m.theme.errText.Render(m.addErr) + "\n")
	}
	if m.addSaving {
		b.WriteString(m.spinner.View() + " saving...\n")
	}

	b.WriteString(m.theme.help.Render("tab switch field  ctrl+s save  esc cancel"))
	return b.String()
}

// previewOf returns the first line of content, truncated for the status area.
func previewOf(content string) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if len(line) > 80 {
		line = line[:77] + "..."
	}
	return line
}
