package ui

import (
	"fmt"
	"strings"

	"github.com/Joshd667/RecipeBliss/internal/state"
)

func (m Model) renderTabs() string {
	s := m.styles

	shoppingLabel := "2 Shopping"
	if n := len(m.st.ShoppingList); n > 0 {
		shoppingLabel = fmt.Sprintf("2 Shopping (%d)", n)
	}

	tabs := []struct {
		tab   state.Tab
		label string
	}{
		{state.TabRecipes, "1 Recipes"},
		{state.TabShopping, shoppingLabel},
		{state.TabSettings, "3 Settings"},
	}

	var parts []string
	parts = append(parts, s.Title.Render(" RecipeBliss "))
	for _, t := range tabs {
		if t.tab == m.st.ActiveTab {
			parts = append(parts, s.TabActive.Render(t.label))
		} else {
			parts = append(parts, s.TabInactive.Render(t.label))
		}
	}
	return m.styles.Header.Render(strings.Join(parts, ""))
}

func (m Model) renderFooter() string {
	s := m.styles
	if m.status != "" {
		return s.Footer.Render(s.WarningText.Render(m.status))
	}
	return s.Footer.Render(m.footerHints())
}

func (m Model) footerHints() string {
	switch m.st.ActiveTab {
	case state.TabShopping:
		return "space check · s sort · a add · x remove · C clear done · S share · ? help"
	case state.TabSettings:
		return "j/k move · enter change · ? help"
	default:
		if m.st.SelectedID != 0 {
			if m.st.ViewMode == state.ViewStep {
				return "n next · p previous · esc stop cooking"
			}
			return "c cook · a add items · s share · v fav · 1-5 rate · m comment · esc back"
		}
		return "/ search · f filter · space select · a add selected · n new · enter open · ? help"
	}
}

func (m Model) renderHelp() string {
	s := m.styles

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"1 / 2 / 3", "switch tab (outside recipe detail)"},
			{"tab", "next tab"},
			{"q, ctrl+c", "quit"},
			{"?", "this help"},
		}},
		{"Recipes", [][2]string{
			{"/", "search"},
			{"f", "filter panel"},
			{"j / k", "move"},
			{"space", "select for the shopping list"},
			{"+ / -", "adjust servings of selection"},
			{"a", "add selected recipes' ingredients"},
			{"v", "toggle favorite"},
			{"n", "new recipe"},
			{"enter", "open recipe"},
		}},
		{"Recipe detail", [][2]string{
			{"c", "start cooking"},
			{"a", "add ingredients to the list"},
			{"+ / -", "adjust servings"},
			{"1-5", "rate (press again to clear)"},
			{"m", "add a comment"},
			{"s", "share link"},
			{"x", "delete (own recipes)"},
			{"esc", "back"},
		}},
		{"Shopping", [][2]string{
			{"space", "check / uncheck"},
			{"s", "cycle sort: aisle, category, A-Z"},
			{"a", "add item by hand"},
			{"x", "remove item"},
			{"C", "clear checked"},
			{"D", "delete all"},
			{"S", "share the list"},
		}},
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n" + s.GroupTitle.Render(section.title) + "\n")
		for _, k := range section.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				s.AccentText.Render(fmt.Sprintf("%-12s", k[0])),
				s.MutedText.Render(k[1])))
		}
	}
	b.WriteString("\n" + s.FaintText.Render("press any key to close"))
	return b.String()
}
