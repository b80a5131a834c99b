package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/share"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

// detailServings returns the serving count the detail view is scaled
// to: the multi-select choice when present, the recipe default
// otherwise.
func detailServings(st state.State, r recipe.Recipe) int {
	if servings, ok := st.SelectedServings[r.ID]; ok {
		return servings
	}
	return r.Servings
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.st.SelectedRecipe()
	if r == nil {
		m.mutate(func(st *state.State) { st.SelectedID = 0 })
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mutate(func(st *state.State) {
			st.SelectedID = 0
			st.ViewMode = state.ViewOverview
		})
		return m, nil

	case "c":
		m.mutate(func(st *state.State) {
			st.ViewMode = state.ViewStep
			st.StepIndex = 0
		})
		return m, nil

	case "a":
		servings := detailServings(m.st, *r)
		items := shopping.FromRecipe(*r, servings)
		m.mutate(func(st *state.State) {
			st.ShoppingList = append(st.ShoppingList, items...)
		})
		m.status = fmt.Sprintf("Added %d %s to the shopping list", len(items), plural(len(items), "item", "items"))
		return m, nil

	case "+", "=":
		m.adjustDetailServings(*r, 1)
		return m, nil
	case "-":
		m.adjustDetailServings(*r, -1)
		return m, nil

	case "v":
		id := r.ID
		m.mutate(func(st *state.State) {
			st.Favorites[id] = !st.Favorites[id]
		})
		m.refreshDetailViewport()
		return m, nil

	case "1", "2", "3", "4", "5":
		id := r.ID
		rating := int(msg.String()[0] - '0')
		m.mutate(func(st *state.State) {
			if st.Ratings[id] == rating {
				delete(st.Ratings, id)
			} else {
				st.Ratings[id] = rating
			}
		})
		m.refreshDetailViewport()
		return m, nil

	case "m":
		m.commenting = true
		m.commentInput.SetValue("")
		m.commentInput.Focus()
		return m, nil

	case "s":
		m.shareRecipe(*r)
		return m, nil

	case "x":
		m.deleteRecipe(*r)
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) adjustDetailServings(r recipe.Recipe, delta int) {
	id := r.ID
	base := detailServings(m.st, r)
	next := base + delta
	if next < 1 {
		next = 1
	}
	m.mutate(func(st *state.State) {
		st.SelectedServings[id] = next
	})
	m.refreshDetailViewport()
}

// shareRecipe builds a link for the open recipe: catalog recipes go by
// reference, everything else by value.
func (m *Model) shareRecipe(r recipe.Recipe) {
	link, err := share.RecipeLink(m.shareBase, r)
	switch {
	case errors.Is(err, share.ErrTooLong):
		m.status = "Recipe is too large to share as a link"
	case err != nil:
		m.log.Warn("build recipe link", "recipe", r.ID, "error", err)
		m.status = "Could not build a share link"
	default:
		m.status = "Share link: " + link
	}
}

func (m *Model) deleteRecipe(r recipe.Recipe) {
	if !r.UserCreated && !r.Shared {
		m.status = "Catalog recipes can't be deleted"
		return
	}
	if m.records != nil {
		if err := m.records.DeleteRecipe(r.ID); err != nil {
			m.log.Warn("delete recipe record", "recipe", r.ID, "error", err)
			m.status = "Delete failed: " + err.Error()
			return
		}
	}
	id := r.ID
	m.mutate(func(st *state.State) {
		for i := range st.Recipes {
			if st.Recipes[i].ID == id {
				st.Recipes = append(st.Recipes[:i:i], st.Recipes[i+1:]...)
				break
			}
		}
		st.SelectedID = 0
		delete(st.SelectedServings, id)
		delete(st.Favorites, id)
		delete(st.Ratings, id)
		delete(st.Comments, id)
	})
	m.status = "Recipe deleted"
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.commentInput.Value())
		m.commenting = false
		m.commentInput.Blur()
		if text == "" {
			return m, nil
		}
		id := m.st.SelectedID
		m.mutate(func(st *state.State) {
			st.Comments[id] = append(st.Comments[id], state.Comment{Text: text, At: time.Now().UTC()})
		})
		m.refreshDetailViewport()
		return m, nil
	case "esc":
		m.commenting = false
		m.commentInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m *Model) refreshDetailViewport() {
	if !m.ready {
		return
	}
	r := m.st.SelectedRecipe()
	if r == nil {
		return
	}
	m.detailViewport.SetContent(m.detailContent(*r))
}

func (m Model) detailContent(r recipe.Recipe) string {
	s := m.styles
	servings := detailServings(m.st, r)
	factor := 1.0
	if r.Servings > 0 && servings != r.Servings {
		factor = float64(servings) / float64(r.Servings)
	}

	var b strings.Builder

	title := r.Title
	if m.st.Favorites[r.ID] {
		title += " ★"
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	meta := []string{string(r.Difficulty)}
	if r.Category != "" {
		meta = append(meta, r.Category)
	}
	if r.Origin != "" {
		meta = append(meta, r.Origin)
	}
	if r.CookingStyle != "" {
		meta = append(meta, r.CookingStyle)
	}
	b.WriteString(s.MutedText.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	var stats []string
	if r.PrepTime != "" {
		stats = append(stats, "prep "+r.PrepTime)
	}
	if r.CookTime != "" {
		stats = append(stats, "cook "+r.CookTime)
	}
	if r.Calories > 0 {
		stats = append(stats, fmt.Sprintf("%d kcal", r.Calories))
	}
	stats = append(stats, fmt.Sprintf("%d servings", servings))
	b.WriteString(s.FaintText.Render(strings.Join(stats, " · ")))
	b.WriteString("\n")

	if rating := m.st.Ratings[r.ID]; rating > 0 {
		b.WriteString(s.WarningText.Render(strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)))
		b.WriteString("\n")
	}

	if r.Description != "" {
		b.WriteString("\n" + s.Text.Render(r.Description) + "\n")
	}

	b.WriteString("\n" + s.GroupTitle.Render("Ingredients") + "\n")
	for _, ing := range r.Ingredients {
		amount := ing.DisplayAmount(m.st.UseMetric)
		if factor != 1.0 {
			amount = recipe.Scale(amount, factor)
		}
		line := "  - " + ing.Name
		if amount != "" {
			line += s.MutedText.Render("  " + amount)
		}
		b.WriteString(line + "\n")
	}

	if len(r.Steps) > 0 {
		b.WriteString("\n" + s.GroupTitle.Render("Method") + "\n")
		for i, step := range r.Steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	if len(r.Tips) > 0 {
		b.WriteString("\n" + s.GroupTitle.Render("Tips") + "\n")
		for _, tip := range r.Tips {
			b.WriteString("  * " + tip + "\n")
		}
	}

	if comments := m.st.Comments[r.ID]; len(comments) > 0 {
		b.WriteString("\n" + s.GroupTitle.Render("Comments") + "\n")
		for _, c := range comments {
			b.WriteString("  " + s.FaintText.Render(c.At.Format("2006-01-02")) + " " + c.Text + "\n")
		}
	}

	if len(r.Tags) > 0 {
		b.WriteString("\n" + s.InfoText.Render("#"+strings.Join(r.Tags, " #")) + "\n")
	}

	return b.String()
}

func (m Model) renderDetail() string {
	if m.st.SelectedRecipe() == nil {
		return m.styles.MutedText.Render("  Recipe not found.")
	}
	view := m.detailViewport.View()
	if m.commenting {
		view += "\n" + m.styles.Text.Render("Comment: ") + m.commentInput.View()
	}
	return view
}

// Cook mode

func (m Model) handleCookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.st.SelectedRecipe()
	if r == nil {
		m.mutate(func(st *state.State) {
			st.SelectedID = 0
			st.ViewMode = state.ViewOverview
		})
		return m, nil
	}

	last := len(r.Steps) - 1

	switch msg.String() {
	case "esc":
		m.mutate(func(st *state.State) {
			st.ViewMode = state.ViewOverview
			st.StepIndex = 0
		})
		m.refreshDetailViewport()

	case "n", "l", "right", " ":
		if m.st.StepIndex < last {
			// Step position is redrawn by this model alone; no
			// subscriber needs a pass per keystroke.
			m.mutateQuiet(func(st *state.State) { st.StepIndex++ })
		}

	case "p", "h", "left":
		if m.st.StepIndex > 0 {
			m.mutateQuiet(func(st *state.State) { st.StepIndex-- })
		}

	case "enter", "f":
		if m.st.StepIndex >= last {
			m.mutate(func(st *state.State) {
				st.ViewMode = state.ViewOverview
				st.StepIndex = 0
			})
			m.refreshDetailViewport()
			m.status = "Nice work, enjoy!"
		} else if msg.String() == "enter" {
			m.mutateQuiet(func(st *state.State) { st.StepIndex++ })
		}
	}

	return m, nil
}

func (m Model) renderCook() string {
	s := m.styles
	r := m.st.SelectedRecipe()
	if r == nil || len(r.Steps) == 0 {
		return s.MutedText.Render("  Nothing to cook.")
	}

	idx := clamp(m.st.StepIndex, 0, len(r.Steps)-1)

	var b strings.Builder
	b.WriteString(s.Title.Render("Cooking: " + r.Title))
	b.WriteString("\n")
	b.WriteString(s.MutedText.Render(fmt.Sprintf("Step %d of %d  %s", idx+1, len(r.Steps), progressBar(idx+1, len(r.Steps), 20))))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(r.Steps[idx]))
	b.WriteString("\n\n")
	if idx == len(r.Steps)-1 {
		b.WriteString(s.SuccessText.Render("Last step. Press enter to finish."))
	} else {
		b.WriteString(s.FaintText.Render("n next · p previous · esc stop"))
	}
	return b.String()
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := done * width / total
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
