package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/state"
)

// handleKey routes keyboard input. Text-entry modes and modal prompts
// claim the keyboard before the global bindings apply.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Status lines show until the next keypress.
	m.status = ""

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.importing != importNone {
		return m.handleImportKey(msg)
	}
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.commenting {
		return m.handleCommentKey(msg)
	}
	if m.addingItem {
		return m.handleItemEntryKey(msg)
	}
	if m.filterOpen {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "1":
		// Digits rate the recipe while the detail view is open.
		if !m.detailOpen() {
			return m.switchTab(state.TabRecipes)
		}
	case "2":
		if !m.detailOpen() {
			return m.switchTab(state.TabShopping)
		}
	case "3":
		if !m.detailOpen() {
			return m.switchTab(state.TabSettings)
		}

	case "tab":
		return m.switchTab(nextTab(m.st.ActiveTab))
	}

	switch m.st.ActiveTab {
	case state.TabShopping:
		return m.handleShoppingKey(msg)
	case state.TabSettings:
		return m.handleSettingsKey(msg)
	default:
		if m.st.SelectedID != 0 {
			if m.st.ViewMode == state.ViewStep {
				return m.handleCookKey(msg)
			}
			return m.handleDetailKey(msg)
		}
		return m.handleBrowseKey(msg)
	}
}

func (m Model) detailOpen() bool {
	return m.st.ActiveTab == state.TabRecipes && m.st.SelectedID != 0
}

func (m Model) switchTab(tab state.Tab) (tea.Model, tea.Cmd) {
	m.mutate(func(st *state.State) {
		st.ActiveTab = tab
	})
	return m, nil
}

func nextTab(tab state.Tab) state.Tab {
	switch tab {
	case state.TabRecipes:
		return state.TabShopping
	case state.TabShopping:
		return state.TabSettings
	default:
		return state.TabRecipes
	}
}
