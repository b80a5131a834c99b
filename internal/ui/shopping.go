package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/share"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

// shoppingRow is one rendered line: either a group heading or an item.
type shoppingRow struct {
	heading string
	item    *shopping.Item
}

func shoppingRows(st state.State) []shoppingRow {
	var rows []shoppingRow
	for _, group := range shopping.Grouped(st.ShoppingList, st.SortMode) {
		rows = append(rows, shoppingRow{heading: group.Title})
		for i := range group.Items {
			item := group.Items[i]
			rows = append(rows, shoppingRow{item: &item})
		}
	}
	return rows
}

// itemRowIndexes returns the indexes of selectable (non-heading) rows.
func itemRowIndexes(rows []shoppingRow) []int {
	var idx []int
	for i, row := range rows {
		if row.item != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m Model) shoppingCursorItem(rows []shoppingRow) *shopping.Item {
	selectable := itemRowIndexes(rows)
	if m.shopCursor < 0 || m.shopCursor >= len(selectable) {
		return nil
	}
	return rows[selectable[m.shopCursor]].item
}

func (m Model) handleShoppingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := shoppingRows(m.st)
	itemCount := len(itemRowIndexes(rows))

	switch msg.String() {
	case "j", "down":
		if m.shopCursor < itemCount-1 {
			m.shopCursor++
		}
	case "k", "up":
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case "g", "home":
		m.shopCursor = 0
	case "G", "end":
		m.shopCursor = max(itemCount-1, 0)

	case "s":
		m.mutate(func(st *state.State) {
			st.SortMode = nextSortMode(st.SortMode)
		})

	case " ", "enter":
		if item := m.shoppingCursorItem(rows); item != nil {
			id := item.ID
			m.mutate(func(st *state.State) {
				st.ShoppingList = shopping.Toggle(st.ShoppingList, id)
			})
		}

	case "x":
		if item := m.shoppingCursorItem(rows); item != nil {
			id := item.ID
			m.mutate(func(st *state.State) {
				st.ShoppingList = shopping.Remove(st.ShoppingList, id)
			})
			if m.shopCursor >= itemCount-1 && m.shopCursor > 0 {
				m.shopCursor--
			}
		}

	case "C":
		cleared := shopping.CheckedCount(m.st.ShoppingList)
		if cleared == 0 {
			return m, nil
		}
		m.mutate(func(st *state.State) {
			st.ShoppingList = shopping.ClearChecked(st.ShoppingList)
		})
		m.shopCursor = 0
		m.status = fmt.Sprintf("Removed %d checked %s", cleared, plural(cleared, "item", "items"))

	case "D":
		if len(m.st.ShoppingList) == 0 {
			return m, nil
		}
		m.mutate(func(st *state.State) {
			st.ShoppingList = nil
			st.SelectedServings = make(map[int64]int)
		})
		m.shopCursor = 0
		m.status = "Shopping list cleared"

	case "a":
		m.addingItem = true
		m.itemInput.SetValue("")
		m.itemInput.Focus()
		return m, nil

	case "S":
		m.shareBasket()
	}

	return m, nil
}

func nextSortMode(mode shopping.SortMode) shopping.SortMode {
	switch mode {
	case shopping.SortByAisle:
		return shopping.SortByCategory
	case shopping.SortByCategory:
		return shopping.SortAlpha
	default:
		return shopping.SortByAisle
	}
}

func (m *Model) shareBasket() {
	if len(m.st.ShoppingList) == 0 {
		m.status = "Nothing to share yet"
		return
	}
	link, err := share.BasketURL(m.shareBase, m.st.ShoppingList, m.st.SelectedServings, m.st.UseMetric)
	switch {
	case errors.Is(err, share.ErrTooLong):
		m.status = "List is too long to share as a link"
	case err != nil:
		m.log.Warn("build basket link", "error", err)
		m.status = "Could not build a share link"
	default:
		m.status = "Share link: " + link
	}
}

// handleItemEntryKey consumes the manual-entry line. The format is
// "name, amount, category, aisle" with everything after name optional.
func (m Model) handleItemEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.addingItem = false
		m.itemInput.Blur()
		item, ok := parseItemEntry(m.itemInput.Value())
		if !ok {
			m.status = "Item needs at least a name"
			return m, nil
		}
		m.mutate(func(st *state.State) {
			st.ShoppingList = append(st.ShoppingList, item)
		})
		return m, nil
	case "esc":
		m.addingItem = false
		m.itemInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.itemInput, cmd = m.itemInput.Update(msg)
	return m, cmd
}

func parseItemEntry(line string) (shopping.Item, bool) {
	parts := strings.SplitN(line, ",", 4)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	if parts[0] == "" {
		return shopping.Item{}, false
	}
	return shopping.NewItem(parts[0], parts[1], parts[1], parts[2], parts[3]), true
}

func (m Model) renderShopping() string {
	s := m.styles
	rows := shoppingRows(m.st)
	selectable := itemRowIndexes(rows)

	var b strings.Builder

	modes := []shopping.SortMode{shopping.SortByAisle, shopping.SortByCategory, shopping.SortAlpha}
	labels := map[shopping.SortMode]string{
		shopping.SortByAisle:    "Aisle",
		shopping.SortByCategory: "Category",
		shopping.SortAlpha:      "A-Z",
	}
	var tabs []string
	for _, mode := range modes {
		if mode == m.st.SortMode {
			tabs = append(tabs, s.TabActive.Render(labels[mode]))
		} else {
			tabs = append(tabs, s.TabInactive.Render(labels[mode]))
		}
	}
	b.WriteString(strings.Join(tabs, ""))
	checked := shopping.CheckedCount(m.st.ShoppingList)
	b.WriteString(s.MutedText.Render(fmt.Sprintf("  %d/%d done", checked, len(m.st.ShoppingList))))
	b.WriteString("\n")

	if m.addingItem {
		b.WriteString(s.Text.Render("New item: ") + m.itemInput.View() + "\n")
	}

	if len(rows) == 0 {
		b.WriteString("\n" + s.MutedText.Render("  The list is empty. Add ingredients from a recipe."))
		return b.String()
	}

	cursorRow := -1
	if m.shopCursor >= 0 && m.shopCursor < len(selectable) {
		cursorRow = selectable[m.shopCursor]
	}

	height := m.listHeight()
	start, end := window(max(cursorRow, 0), len(rows), height)
	for i := start; i < end; i++ {
		b.WriteString(m.renderShoppingRow(rows[i], i == cursorRow))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderShoppingRow(row shoppingRow, current bool) string {
	s := m.styles
	if row.heading != "" {
		return s.GroupTitle.Render(row.heading)
	}

	item := *row.item

	marker := "  "
	if current {
		marker = s.AccentText.Render("> ")
	}

	box := "[ ] "
	if item.Checked {
		box = "[x] "
	}

	name := item.Name
	amount := item.DisplayAmount(m.st.UseMetric)
	switch {
	case current:
		name = s.Selected.Render(name)
	case item.Checked:
		name = s.Checked.Render(name)
	default:
		name = s.Text.Render(name)
	}

	line := marker + box + name
	if amount != "" {
		line += s.MutedText.Render("  " + amount)
	}
	return line
}
