package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles of one color scheme. The active theme is
// swapped at runtime with the theme key.
type Theme struct {
	name string

	app       lipgloss.Style
	title     lipgloss.Style
	tabActive lipgloss.Style
	tabIdle   lipgloss.Style
	cursor    lipgloss.Style
	dim       lipgloss.Style
	status    lipgloss.Style
	undoHint  lipgloss.Style
	errText   lipgloss.Style
	help      lipgloss.Style
}

func darkTheme() Theme {
	return Theme{
		name: "dark",

		app:       lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		tabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		undoHint:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		errText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}

func lightTheme() Theme {
	return Theme{
		name: "light",

		app:       lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("54")),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		tabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		undoHint:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
		errText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}

// themeByName resolves a configured theme name, defaulting to dark.
func themeByName(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

// toggle switches between the dark and light schemes.
func (t Theme) toggle() Theme {
	if t.name == "dark" {
		return lightTheme()
	}
	return darkTheme()
}
