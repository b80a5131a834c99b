package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/share"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

// applyBasket installs a decoded shared basket. Merge keeps existing
// items and serving choices; replace adopts the basket wholesale,
// including its unit preference.
func (m *Model) applyBasket(basket *share.Basket, merge bool) {
	m.mutate(func(st *state.State) {
		if merge {
			st.ShoppingList = append(st.ShoppingList, basket.Items...)
			// Existing serving choices win over the link's.
			for id, servings := range basket.Selections {
				if _, ok := st.SelectedServings[id]; !ok {
					st.SelectedServings[id] = servings
				}
			}
			return
		}
		st.ShoppingList = append([]shopping.Item(nil), basket.Items...)
		st.SelectedServings = make(map[int64]int)
		for id, servings := range basket.Selections {
			st.SelectedServings[id] = servings
		}
		st.UseMetric = basket.UseMetric
	})
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.importing {
	case importBasket:
		switch msg.String() {
		case "m":
			m.applyBasket(m.pendingBasket, true)
			m.finishImport("Lists merged")
		case "r":
			m.applyBasket(m.pendingBasket, false)
			m.finishImport("List replaced")
		case "esc", "i", "n":
			m.finishImport("Shared list ignored")
		}

	case importRecipe:
		switch msg.String() {
		case "y", "enter":
			m.importSharedRecipe()
		case "esc", "n", "i":
			m.finishImport("Shared recipe ignored")
		}
	}
	return m, nil
}

func (m *Model) importSharedRecipe() {
	r := *m.pendingRecipe
	if m.records != nil {
		saved, err := m.records.PutRecipe(r)
		if err != nil {
			m.log.Warn("save imported recipe", "error", err)
			m.finishImport("Import failed: " + err.Error())
			return
		}
		r = saved
	}
	m.mutate(func(st *state.State) {
		st.Recipes = append(st.Recipes, r)
		st.ActiveTab = state.TabRecipes
		st.SelectedID = r.ID
		st.ViewMode = state.ViewOverview
	})
	m.refreshDetailViewport()
	m.finishImport("Recipe imported")
}

func (m *Model) finishImport(status string) {
	m.importing = importNone
	m.pendingBasket = nil
	m.pendingRecipe = nil
	m.status = status
}

func (m Model) renderImportPrompt() string {
	s := m.styles

	var body string
	switch m.importing {
	case importBasket:
		n := len(m.pendingBasket.Items)
		body = s.Title.Render("Shared shopping list") + "\n\n" +
			s.Text.Render(fmt.Sprintf("The link contains %d %s. Your list has %d.",
				n, plural(n, "item", "items"), len(m.st.ShoppingList))) + "\n\n" +
			s.AccentText.Render("m") + s.MutedText.Render(" merge   ") +
			s.AccentText.Render("r") + s.MutedText.Render(" replace   ") +
			s.AccentText.Render("i") + s.MutedText.Render(" ignore")

	case importRecipe:
		body = s.Title.Render("Shared recipe") + "\n\n" +
			s.Text.Render(fmt.Sprintf("Import %q into your collection?", m.pendingRecipe.Title)) + "\n\n" +
			s.AccentText.Render("y") + s.MutedText.Render(" import   ") +
			s.AccentText.Render("i") + s.MutedText.Render(" ignore")
	}

	modal := s.Modal.Render(body)
	if m.width > 0 {
		pad := (m.width - lineWidth(modal)) / 2
		if pad > 0 {
			modal = indent(modal, pad)
		}
	}
	return "\n\n" + modal
}

func lineWidth(block string) int {
	widest := 0
	for _, line := range strings.Split(block, "\n") {
		if w := len([]rune(line)); w > widest {
			widest = w
		}
	}
	return widest
}

func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
