package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

type filterKind int

const (
	filterDifficulty filterKind = iota
	filterCategory
	filterStyle
	filterTag
	filterTime
	filterCalories
	filterRating
)

type filterRow struct {
	kind    filterKind
	section string // non-empty on the first row of a section
	label   string
}

// timeSpans and calorieSpans are the presets the panel cycles through.
// A nil span means the criterion is off.
var (
	timeSpans     = []recipe.Span{{Min: 0, Max: 30}, {Min: 0, Max: 60}, {Min: 0, Max: 120}}
	calorieSpans  = []recipe.Span{{Min: 0, Max: 400}, {Min: 0, Max: 700}, {Min: 0, Max: 1000}}
	difficultyOps = []recipe.Difficulty{recipe.DifficultyEasy, recipe.DifficultyMedium, recipe.DifficultyHard}
)

func (m Model) filterRows() []filterRow {
	var rows []filterRow
	for i, d := range difficultyOps {
		row := filterRow{kind: filterDifficulty, label: string(d)}
		if i == 0 {
			row.section = "Difficulty"
		}
		rows = append(rows, row)
	}
	for i, c := range recipe.Categories {
		row := filterRow{kind: filterCategory, label: c}
		if i == 0 {
			row.section = "Category"
		}
		rows = append(rows, row)
	}
	for i, cs := range recipe.CookingStyles {
		row := filterRow{kind: filterStyle, label: cs}
		if i == 0 {
			row.section = "Cooking style"
		}
		rows = append(rows, row)
	}
	for i, tag := range recipe.UniqueTags(m.st.Recipes) {
		row := filterRow{kind: filterTag, label: tag}
		if i == 0 {
			row.section = "Tags"
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		filterRow{kind: filterTime, section: "Ranges", label: "Total time"},
		filterRow{kind: filterCalories, label: "Calories"},
		filterRow{kind: filterRating, label: "Minimum rating"},
	)
	return rows
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.filterRows()

	switch msg.String() {
	case "esc", "f":
		m.filterOpen = false
		m.cursor = 0
		return m, nil

	case "j", "down":
		if m.filterRow < len(rows)-1 {
			m.filterRow++
		}
	case "k", "up":
		if m.filterRow > 0 {
			m.filterRow--
		}

	case "x":
		m.mutate(func(st *state.State) {
			st.Filters = recipe.Filters{}
		})

	case " ", "enter", "l", "right":
		m.toggleFilterRow(rows, 1)
	case "h", "left":
		m.toggleFilterRow(rows, -1)
	}

	return m, nil
}

func (m *Model) toggleFilterRow(rows []filterRow, dir int) {
	if m.filterRow < 0 || m.filterRow >= len(rows) {
		return
	}
	row := rows[m.filterRow]

	m.mutate(func(st *state.State) {
		f := &st.Filters
		switch row.kind {
		case filterDifficulty:
			f.Difficulties = toggleValue(f.Difficulties, recipe.Difficulty(row.label))
		case filterCategory:
			f.Categories = toggleValue(f.Categories, row.label)
		case filterStyle:
			f.CookingStyles = toggleValue(f.CookingStyles, row.label)
		case filterTag:
			f.Tags = toggleValue(f.Tags, row.label)
		case filterTime:
			f.Time = cycleSpan(f.Time, timeSpans, dir)
		case filterCalories:
			f.Calories = cycleSpan(f.Calories, calorieSpans, dir)
		case filterRating:
			f.MinRating = clamp(f.MinRating+dir, 0, 5)
		}
	})
}

func toggleValue[T comparable](list []T, v T) []T {
	for i, existing := range list {
		if existing == v {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, v)
}

// cycleSpan steps through presets, with off at both ends.
func cycleSpan(current *recipe.Span, presets []recipe.Span, dir int) *recipe.Span {
	idx := -1
	for i, p := range presets {
		if current != nil && *current == p {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 || idx >= len(presets) {
		return nil
	}
	span := presets[idx]
	return &span
}

func (m Model) renderFilters() string {
	rows := m.filterRows()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Filters"))
	b.WriteString(s.MutedText.Render("  space toggle · h/l adjust · x clear · esc close"))
	b.WriteString("\n")

	height := m.listHeight()
	start, end := window(m.filterRow, len(rows), height)
	for i := start; i < end; i++ {
		b.WriteString(m.renderFilterRow(rows[i], i == m.filterRow))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderFilterRow(row filterRow, current bool) string {
	s := m.styles
	f := m.st.Filters

	var value string
	active := false
	switch row.kind {
	case filterDifficulty:
		active = containsValue(f.Difficulties, recipe.Difficulty(row.label))
		value = checkbox(active)
	case filterCategory:
		active = containsValue(f.Categories, row.label)
		value = checkbox(active)
	case filterStyle:
		active = containsValue(f.CookingStyles, row.label)
		value = checkbox(active)
	case filterTag:
		active = containsValue(f.Tags, row.label)
		value = checkbox(active)
	case filterTime:
		value = spanLabel(f.Time, "min")
		active = f.Time != nil
	case filterCalories:
		value = spanLabel(f.Calories, "kcal")
		active = f.Calories != nil
	case filterRating:
		if f.MinRating > 0 {
			value = strings.Repeat("★", f.MinRating)
			active = true
		} else {
			value = "any"
		}
	}

	prefix := "  "
	if row.section != "" {
		prefix = s.GroupTitle.Render(row.section) + "\n  "
	}

	marker := "  "
	if current {
		marker = s.AccentText.Render("> ")
	}

	label := row.label
	switch {
	case current:
		label = s.Selected.Render(label)
	case active:
		label = s.SuccessText.Render(label)
	default:
		label = s.Text.Render(label)
	}

	return prefix + marker + label + "  " + s.MutedText.Render(value)
}

func containsValue[T comparable](list []T, v T) bool {
	for _, existing := range list {
		if existing == v {
			return true
		}
	}
	return false
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func spanLabel(span *recipe.Span, unit string) string {
	if span == nil {
		return "any"
	}
	return fmt.Sprintf("up to %d %s", span.Max, unit)
}
