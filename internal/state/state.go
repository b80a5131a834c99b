package state

import (
	"time"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
)

// Tab identifies a top-level view.
type Tab string

const (
	TabRecipes  Tab = "recipes"
	TabShopping Tab = "shopping"
	TabSettings Tab = "settings"
)

// ViewMode selects between the recipe overview and step-by-step cook
// mode while a recipe is open.
type ViewMode string

const (
	ViewOverview ViewMode = "overview"
	ViewStep     ViewMode = "step"
)

// ThemeMode is the dark-mode preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Comment is a user note attached to a recipe.
type Comment struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// State is the single authoritative application state. It is owned by
// the Store; all writes go through Mutate or MutateQuiet.
type State struct {
	ActiveTab        Tab
	SelectedID       int64 // open recipe id, 0 = none
	ViewMode         ViewMode
	StepIndex        int
	ShoppingList     []shopping.Item
	SortMode         shopping.SortMode
	UseMetric        bool
	SelectedServings map[int64]int // recipe id -> chosen serving count
	Recipes          []recipe.Recipe
	Filters          recipe.Filters
	Query            string
	ThemeMode        ThemeMode
	Favorites        map[int64]bool
	Ratings          map[int64]int // 1-5
	Comments         map[int64][]Comment
}

// SelectedRecipe resolves the open recipe, or nil.
func (s State) SelectedRecipe() *recipe.Recipe {
	if s.SelectedID == 0 {
		return nil
	}
	return recipe.FindByID(s.Recipes, s.SelectedID)
}

func defaultState() State {
	return State{
		ActiveTab:        TabRecipes,
		ViewMode:         ViewOverview,
		SortMode:         shopping.SortByAisle,
		ThemeMode:        ThemeSystem,
		SelectedServings: make(map[int64]int),
		Favorites:        make(map[int64]bool),
		Ratings:          make(map[int64]int),
		Comments:         make(map[int64][]Comment),
	}
}
