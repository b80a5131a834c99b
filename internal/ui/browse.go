package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

// visibleRecipes applies the active filters and search query.
func visibleRecipes(st state.State) []recipe.Recipe {
	return recipe.Search(recipe.Apply(st.Recipes, st.Filters, st.Ratings), st.Query)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := visibleRecipes(m.st)

	switch msg.String() {
	case "/":
		m.searching = true
		m.search.SetValue(m.st.Query)
		m.search.Focus()
		return m, nil

	case "f":
		m.filterOpen = true
		m.filterRow = 0
		return m, nil

	case "n":
		m.form = newRecipeForm()
		return m, m.form.focusCurrent()

	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(visible)-1, 0)

	case "enter":
		if r := m.recipeUnderCursor(visible); r != nil {
			id := r.ID
			m.mutate(func(st *state.State) {
				st.SelectedID = id
				st.ViewMode = state.ViewOverview
			})
			m.refreshDetailViewport()
		}

	case "v":
		if r := m.recipeUnderCursor(visible); r != nil {
			id := r.ID
			m.mutate(func(st *state.State) {
				st.Favorites[id] = !st.Favorites[id]
			})
		}

	case " ":
		// Toggle multi-select; a fresh selection starts at the
		// recipe's own serving count.
		if r := m.recipeUnderCursor(visible); r != nil {
			id, servings := r.ID, r.Servings
			m.mutate(func(st *state.State) {
				if _, ok := st.SelectedServings[id]; ok {
					delete(st.SelectedServings, id)
				} else {
					st.SelectedServings[id] = servings
				}
			})
		}

	case "+", "=":
		m.adjustServings(visible, 1)
	case "-":
		m.adjustServings(visible, -1)

	case "a":
		if len(m.st.SelectedServings) == 0 {
			m.status = "No recipes selected"
			return m, nil
		}
		added := shopping.FromSelections(m.st.Recipes, m.st.SelectedServings)
		m.mutate(func(st *state.State) {
			st.ShoppingList = append(st.ShoppingList, added...)
			st.SelectedServings = make(map[int64]int)
		})
		m.status = fmt.Sprintf("Added %d %s to the shopping list", len(added), plural(len(added), "item", "items"))
	}

	return m, nil
}

func (m *Model) adjustServings(visible []recipe.Recipe, delta int) {
	r := m.recipeUnderCursor(visible)
	if r == nil {
		return
	}
	id := r.ID
	m.mutate(func(st *state.State) {
		current, ok := st.SelectedServings[id]
		if !ok {
			return
		}
		next := current + delta
		if next < 1 {
			next = 1
		}
		st.SelectedServings[id] = next
	})
}

func (m Model) recipeUnderCursor(visible []recipe.Recipe) *recipe.Recipe {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return &visible[m.cursor]
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.search.Value()
		m.searching = false
		m.search.Blur()
		m.mutate(func(st *state.State) { st.Query = query })
		m.cursor = 0
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) renderBrowse() string {
	visible := visibleRecipes(m.st)
	s := m.styles

	var b strings.Builder

	if m.searching {
		b.WriteString(s.Text.Render("Search: ") + m.search.View())
		b.WriteString("\n")
	} else {
		line := fmt.Sprintf("%d %s", len(visible), plural(len(visible), "recipe", "recipes"))
		if m.st.Query != "" {
			line += fmt.Sprintf("  matching %q", m.st.Query)
		}
		if n := m.st.Filters.Active(); n > 0 {
			line += "  " + s.Badge.Render(fmt.Sprintf("%d %s", n, plural(n, "filter", "filters")))
		}
		b.WriteString(s.MutedText.Render(line))
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString("\n" + s.MutedText.Render("  No recipes match."))
		return b.String()
	}

	rows := m.listHeight()
	start, end := window(m.cursor, len(visible), rows)
	for i := start; i < end; i++ {
		b.WriteString(m.renderBrowseRow(visible[i], i == m.cursor))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderBrowseRow(r recipe.Recipe, current bool) string {
	s := m.styles

	marker := "  "
	if current {
		marker = s.AccentText.Render("> ")
	}

	fav := "  "
	if m.st.Favorites[r.ID] {
		fav = s.WarningText.Render("★ ")
	}

	sel := ""
	if servings, ok := m.st.SelectedServings[r.ID]; ok {
		sel = s.SuccessText.Render(fmt.Sprintf(" [%d sv]", servings))
	}

	meta := []string{string(r.Difficulty)}
	if minutes, ok := recipe.TotalTime(r); ok {
		meta = append(meta, fmt.Sprintf("%d min", minutes))
	}
	if r.Calories > 0 {
		meta = append(meta, fmt.Sprintf("%d kcal", r.Calories))
	}
	if rating := m.st.Ratings[r.ID]; rating > 0 {
		meta = append(meta, strings.Repeat("★", rating))
	}

	title := truncate(r.Title, 40)
	if current {
		title = s.Selected.Render(title)
	} else {
		title = s.Text.Render(title)
	}

	return marker + fav + title + sel + "  " +
		s.DifficultyStyle(string(r.Difficulty)).Render(string(r.Difficulty)) +
		s.FaintText.Render("  "+strings.Join(meta[1:], " · "))
}
