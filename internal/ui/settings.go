package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/state"
)

const (
	settingUnits = iota
	settingTheme
	settingCount
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.settingsRow < settingCount-1 {
			m.settingsRow++
		}
	case "k", "up":
		if m.settingsRow > 0 {
			m.settingsRow--
		}
	case " ", "enter", "l", "right", "h", "left":
		back := msg.String() == "h" || msg.String() == "left"
		switch m.settingsRow {
		case settingUnits:
			m.mutate(func(st *state.State) {
				st.UseMetric = !st.UseMetric
			})
		case settingTheme:
			m.mutate(func(st *state.State) {
				st.ThemeMode = cycleThemeMode(st.ThemeMode, back)
			})
		}
	}
	return m, nil
}

func cycleThemeMode(mode state.ThemeMode, back bool) state.ThemeMode {
	order := []state.ThemeMode{state.ThemeSystem, state.ThemeLight, state.ThemeDark}
	for i, candidate := range order {
		if candidate == mode {
			if back {
				return order[(i+len(order)-1)%len(order)]
			}
			return order[(i+1)%len(order)]
		}
	}
	return state.ThemeSystem
}

func (m Model) renderSettings() string {
	s := m.styles

	units := "Imperial"
	if m.st.UseMetric {
		units = "Metric"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Units", units},
		{"Theme", themeModeLabel(m.st.ThemeMode)},
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Settings"))
	b.WriteString("\n\n")
	for i, row := range rows {
		marker := "  "
		label := s.Text.Render(row.label)
		if i == m.settingsRow {
			marker = s.AccentText.Render("> ")
			label = s.Selected.Render(row.label)
		}
		b.WriteString(marker + label + "  " + s.MutedText.Render(row.value) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("Appearance now: " + m.theme.Name))
	if m.dataDir != "" {
		b.WriteString("\n" + s.FaintText.Render("Data: "+m.dataDir))
	}
	if m.catalogDir != "" {
		b.WriteString("\n" + s.FaintText.Render("Catalog: "+m.catalogDir))
	}
	return b.String()
}

func themeModeLabel(mode state.ThemeMode) string {
	switch mode {
	case state.ThemeLight:
		return "Light"
	case state.ThemeDark:
		return "Dark"
	default:
		return "System"
	}
}
