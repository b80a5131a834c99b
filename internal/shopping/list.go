// Package shopping builds and organizes the shopping list. Items are
// derived from recipe ingredients (scaled to the selected serving
// count) or entered by hand, and carry display-only grouping hints
// (category, aisle). Sorting and grouping are view concerns computed
// on demand; only the ordered list itself is state.
package shopping

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
)

// SortMode selects how the list is ordered and grouped.
type SortMode string

const (
	SortByAisle    SortMode = "aisle"
	SortByCategory SortMode = "category"
	SortAlpha      SortMode = "alpha"
)

// Item is a single shopping list entry.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	AmountMetric string `json:"amountMetric"`
	Category     string `json:"category,omitempty"`
	Aisle        string `json:"aisle,omitempty"`
	Checked      bool   `json:"checked"`
}

// DisplayAmount returns the amount string for the active unit system.
func (it Item) DisplayAmount(useMetric bool) string {
	if useMetric {
		return it.AmountMetric
	}
	return it.Amount
}

// NewItem creates an unchecked item with a fresh id.
func NewItem(name, amount, amountMetric, category, aisle string) Item {
	return Item{
		ID:           uuid.NewString(),
		Name:         name,
		Amount:       amount,
		AmountMetric: amountMetric,
		Category:     category,
		Aisle:        aisle,
	}
}

// FromIngredients converts scaled ingredients into fresh list items.
func FromIngredients(ingredients []recipe.Ingredient) []Item {
	items := make([]Item, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, NewItem(ing.Name, ing.Amount, ing.AmountMetric, ing.Category, ing.Aisle))
	}
	return items
}

// FromRecipe scales a recipe's ingredients to the requested serving
// count and converts them into fresh list items.
func FromRecipe(r recipe.Recipe, servings int) []Item {
	factor := 1.0
	if r.Servings > 0 && servings > 0 {
		factor = float64(servings) / float64(r.Servings)
	}
	return FromIngredients(recipe.ScaleIngredients(r.Ingredients, factor))
}

// FromSelections builds items for every selected recipe, scaled to its
// chosen serving count. Selections referencing unknown recipes are
// skipped.
func FromSelections(recipes []recipe.Recipe, selections map[int64]int) []Item {
	// Deterministic order regardless of map iteration.
	ids := make([]int64, 0, len(selections))
	for id := range selections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var items []Item
	for _, id := range ids {
		r := recipe.FindByID(recipes, id)
		if r == nil {
			continue
		}
		items = append(items, FromRecipe(*r, selections[id])...)
	}
	return items
}

// Toggle flips the checked flag of the item with the given id.
func Toggle(items []Item, id string) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Checked = !it.Checked
		}
		out[i] = it
	}
	return out
}

// Remove drops the item with the given id.
func Remove(items []Item, id string) []Item {
	var out []Item
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// ClearChecked drops every checked item.
func ClearChecked(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if !it.Checked {
			out = append(out, it)
		}
	}
	return out
}

// CheckedCount returns how many items are ticked off.
func CheckedCount(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

// Group is a titled run of items produced by Grouped.
type Group struct {
	Title string
	Items []Item
}

// unknownAisle sorts items without a numeric aisle to the end.
const unknownAisle = 99

func aisleNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return unknownAisle
	}
	return n
}

// Grouped sorts the list by the given mode and splits it into titled
// groups: "Aisle N" (unknown aisles last as "Aisle ?"), category name,
// or first letter.
func Grouped(items []Item, mode SortMode) []Group {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	switch mode {
	case SortAlpha:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortByCategory:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Category < sorted[j].Category })
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return aisleNumber(sorted[i].Aisle) < aisleNumber(sorted[j].Aisle)
		})
	}

	var groups []Group
	for _, it := range sorted {
		title := groupTitle(it, mode)
		if len(groups) == 0 || groups[len(groups)-1].Title != title {
			groups = append(groups, Group{Title: title})
		}
		last := &groups[len(groups)-1]
		last.Items = append(last.Items, it)
	}
	return groups
}

func groupTitle(it Item, mode SortMode) string {
	switch mode {
	case SortByCategory:
		if it.Category == "" {
			return "Other"
		}
		return it.Category
	case SortAlpha:
		if it.Name == "" {
			return "?"
		}
		return strings.ToUpper(string([]rune(it.Name)[:1]))
	default:
		if it.Aisle == "" || aisleNumber(it.Aisle) == unknownAisle {
			return "Aisle ?"
		}
		return "Aisle " + it.Aisle
	}
}
