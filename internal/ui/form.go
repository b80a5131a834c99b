package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

type formRowKind int

const (
	rowInput formRowKind = iota
	rowCycle
	rowEntry // accumulating list entry
	rowSave
)

type formRowSpec struct {
	kind      formRowKind
	label     string
	inputIdx  int // rowInput/rowEntry
	cycleOpts []string
}

// recipeForm is the new-recipe editor. Scalar fields are text inputs,
// the option fields cycle with h/l, and ingredients/steps/tips
// accumulate one entry per enter press.
type recipeForm struct {
	rows  []formRowSpec
	focus int

	inputs []textinput.Model

	category   int
	difficulty int
	style      int

	ingredients []recipe.Ingredient
	steps       []string
	tips        []string
}

const (
	formTitle = iota
	formDescription
	formOrigin
	formPrep
	formCook
	formServings
	formCalories
	formTags
	formIngredient
	formStep
	formTip
	formInputCount
)

func newRecipeForm() *recipeForm {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	inputs := make([]textinput.Model, formInputCount)
	inputs[formTitle] = mk("recipe title", 80)
	inputs[formDescription] = mk("short description", 200)
	inputs[formOrigin] = mk("origin, e.g. Thailand", 40)
	inputs[formPrep] = mk("prep time, e.g. 10 min", 20)
	inputs[formCook] = mk("cook time, e.g. 25 min", 20)
	inputs[formServings] = mk("servings, e.g. 4", 3)
	inputs[formCalories] = mk("calories per serving", 5)
	inputs[formTags] = mk("tags, comma separated", 120)
	inputs[formIngredient] = mk("name, amount, metric amount", 120)
	inputs[formStep] = mk("next method step", 300)
	inputs[formTip] = mk("optional tip", 200)

	styles := make([]string, len(recipe.CookingStyles)+1)
	copy(styles[1:], recipe.CookingStyles)
	categories := make([]string, len(recipe.Categories)+1)
	copy(categories[1:], recipe.Categories)

	rows := []formRowSpec{
		{kind: rowInput, label: "Title", inputIdx: formTitle},
		{kind: rowInput, label: "Description", inputIdx: formDescription},
		{kind: rowInput, label: "Origin", inputIdx: formOrigin},
		{kind: rowCycle, label: "Category", cycleOpts: categories},
		{kind: rowCycle, label: "Difficulty", cycleOpts: []string{"Easy", "Medium", "Hard"}},
		{kind: rowCycle, label: "Cooking style", cycleOpts: styles},
		{kind: rowInput, label: "Prep time", inputIdx: formPrep},
		{kind: rowInput, label: "Cook time", inputIdx: formCook},
		{kind: rowInput, label: "Servings", inputIdx: formServings},
		{kind: rowInput, label: "Calories", inputIdx: formCalories},
		{kind: rowInput, label: "Tags", inputIdx: formTags},
		{kind: rowEntry, label: "Add ingredient", inputIdx: formIngredient},
		{kind: rowEntry, label: "Add step", inputIdx: formStep},
		{kind: rowEntry, label: "Add tip", inputIdx: formTip},
		{kind: rowSave, label: "Save recipe"},
	}

	return &recipeForm{rows: rows, inputs: inputs}
}

func (f *recipeForm) focusCurrent() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	row := f.rows[f.focus]
	if row.kind == rowInput || row.kind == rowEntry {
		f.inputs[row.inputIdx].Focus()
		return textinput.Blink
	}
	return nil
}

func (f *recipeForm) cycleValue(row formRowSpec, dir int) {
	var idx *int
	switch row.label {
	case "Category":
		idx = &f.category
	case "Difficulty":
		idx = &f.difficulty
	case "Cooking style":
		idx = &f.style
	default:
		return
	}
	n := len(row.cycleOpts)
	*idx = (*idx + dir + n) % n
}

func (f *recipeForm) addEntry(row formRowSpec) {
	in := &f.inputs[row.inputIdx]
	value := strings.TrimSpace(in.Value())
	if value == "" {
		return
	}
	switch row.inputIdx {
	case formIngredient:
		parts := strings.SplitN(value, ",", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		f.ingredients = append(f.ingredients, recipe.Ingredient{
			Name:         strings.TrimSpace(parts[0]),
			Amount:       strings.TrimSpace(parts[1]),
			AmountMetric: strings.TrimSpace(parts[2]),
		})
	case formStep:
		f.steps = append(f.steps, value)
	case formTip:
		f.tips = append(f.tips, value)
	}
	in.SetValue("")
}

// build assembles the recipe. The id, timestamps, and authorship flag
// are left for the record store to stamp.
func (f *recipeForm) build() (recipe.Recipe, error) {
	title := strings.TrimSpace(f.inputs[formTitle].Value())
	if title == "" {
		return recipe.Recipe{}, fmt.Errorf("a recipe needs a title")
	}
	if len(f.ingredients) == 0 {
		return recipe.Recipe{}, fmt.Errorf("add at least one ingredient")
	}

	servings, _ := strconv.Atoi(strings.TrimSpace(f.inputs[formServings].Value()))
	if servings <= 0 {
		servings = 1
	}
	calories, _ := strconv.Atoi(strings.TrimSpace(f.inputs[formCalories].Value()))

	var tags []string
	for _, tag := range strings.Split(f.inputs[formTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	difficulty := recipe.Difficulty(f.rows[4].cycleOpts[f.difficulty])

	return recipe.Recipe{
		Title:        title,
		Description:  strings.TrimSpace(f.inputs[formDescription].Value()),
		Category:     f.rows[3].cycleOpts[f.category],
		Origin:       strings.TrimSpace(f.inputs[formOrigin].Value()),
		PrepTime:     strings.TrimSpace(f.inputs[formPrep].Value()),
		CookTime:     strings.TrimSpace(f.inputs[formCook].Value()),
		Servings:     servings,
		Difficulty:   difficulty,
		CookingStyle: f.rows[5].cycleOpts[f.style],
		Calories:     calories,
		Ingredients:  f.ingredients,
		Steps:        f.steps,
		Tips:         f.tips,
		Tags:         tags,
	}, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	row := f.rows[f.focus]

	switch msg.String() {
	case "esc":
		m.form = nil
		m.status = "Recipe discarded"
		return m, nil

	case "tab", "down":
		if f.focus < len(f.rows)-1 {
			f.focus++
		}
		return m, f.focusCurrent()

	case "shift+tab", "up":
		if f.focus > 0 {
			f.focus--
		}
		return m, f.focusCurrent()

	case "left":
		if row.kind == rowCycle {
			f.cycleValue(row, -1)
			return m, nil
		}

	case "right":
		if row.kind == rowCycle {
			f.cycleValue(row, 1)
			return m, nil
		}

	case "enter":
		switch row.kind {
		case rowEntry:
			f.addEntry(row)
			return m, nil
		case rowSave:
			return m.saveForm()
		case rowCycle:
			f.cycleValue(row, 1)
			return m, nil
		default:
			if f.focus < len(f.rows)-1 {
				f.focus++
			}
			return m, f.focusCurrent()
		}
	}

	if row.kind == rowInput || row.kind == rowEntry {
		var cmd tea.Cmd
		f.inputs[row.inputIdx], cmd = f.inputs[row.inputIdx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	built, err := m.form.build()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	if m.records != nil {
		saved, err := m.records.PutRecipe(built)
		if err != nil {
			m.log.Warn("save recipe record", "error", err)
			m.status = "Save failed: " + err.Error()
			return m, nil
		}
		built = saved
	} else if built.ID == 0 {
		built.ID = recipe.NewID()
		built.UserCreated = true
	}

	m.form = nil
	m.mutate(func(st *state.State) {
		st.Recipes = append(st.Recipes, built)
		st.SelectedID = built.ID
		st.ViewMode = state.ViewOverview
	})
	m.refreshDetailViewport()
	m.status = "Recipe saved"
	return m, nil
}

func (m Model) renderForm() string {
	s := m.styles
	f := m.form

	var b strings.Builder
	b.WriteString(s.Title.Render("New recipe"))
	b.WriteString(s.MutedText.Render("  tab next · enter add/save · esc discard"))
	b.WriteString("\n\n")

	for i, row := range f.rows {
		marker := "  "
		label := s.MutedText.Render(row.label)
		if i == f.focus {
			marker = s.AccentText.Render("> ")
			label = s.AccentText.Render(row.label)
		}

		switch row.kind {
		case rowInput, rowEntry:
			b.WriteString(marker + label + ": " + f.inputs[row.inputIdx].View() + "\n")
		case rowCycle:
			value := row.cycleOpts[f.cycleIndex(row)]
			if value == "" {
				value = "(none)"
			}
			b.WriteString(marker + label + ": " + s.Text.Render("< "+value+" >") + "\n")
		case rowSave:
			save := s.SuccessText.Render("[ Save recipe ]")
			if i == f.focus {
				save = s.Selected.Render("[ Save recipe ]")
			}
			b.WriteString("\n" + marker + save + "\n")
		}
	}

	if len(f.ingredients) > 0 || len(f.steps) > 0 {
		b.WriteString("\n" + s.FaintText.Render(fmt.Sprintf(
			"%d ingredients · %d steps · %d tips",
			len(f.ingredients), len(f.steps), len(f.tips))))
	}
	return b.String()
}

func (f *recipeForm) cycleIndex(row formRowSpec) int {
	switch row.label {
	case "Category":
		return f.category
	case "Difficulty":
		return f.difficulty
	case "Cooking style":
		return f.style
	}
	return 0
}
