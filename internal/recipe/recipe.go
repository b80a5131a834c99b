package recipe

import "time"

// Difficulty grades a recipe. The three values mirror what the catalog
// files ship and what the editor form offers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Categories and CookingStyles are the option sets offered by the
// recipe editor. Catalog recipes are expected, but not required, to
// use values from these lists.
var (
	Categories = []string{
		"Breakfast", "Brunch", "Lunch", "Dinner", "Snack", "Dessert",
		"Baking", "Soups/Stews", "Salads", "Sides",
	}
	CookingStyles = []string{
		"Stovetop", "Oven", "Baking", "Roasting", "Slow Cooker",
		"No Cook", "One Pot", "Traybake", "Grilling/BBQ", "Steaming",
	}
)

// Ingredient is a single recipe ingredient. Amounts are opaque display
// strings in the two unit systems ("2 cups", "500g"), not structured
// quantities; see Scale for how they are adjusted. Category and Aisle
// are optional grouping hints carried into shopping list items.
type Ingredient struct {
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	AmountMetric string `json:"amountMetric"`
	Category     string `json:"category,omitempty"`
	Aisle        string `json:"aisle,omitempty"`
}

// DisplayAmount returns the amount string for the active unit system.
func (i Ingredient) DisplayAmount(useMetric bool) string {
	if useMetric {
		return i.AmountMetric
	}
	return i.Amount
}

// Recipe is a full recipe record. Catalog recipes carry small stable
// ids; user-created and imported recipes carry large generated ids
// (see NewID) so the two ranges never overlap.
type Recipe struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Origin       string       `json:"origin,omitempty"`
	PrepTime     string       `json:"prepTime"`
	CookTime     string       `json:"cookTime"`
	Servings     int          `json:"servings"`
	Difficulty   Difficulty   `json:"difficulty"`
	CookingStyle string       `json:"cookingStyle"`
	Calories     int          `json:"calories,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Steps        []string     `json:"steps"`
	Tips         []string     `json:"tips,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Image        string       `json:"image,omitempty"`
	UserCreated  bool         `json:"isUserCreated,omitempty"`
	Shared       bool         `json:"isShared,omitempty"`
	CreatedAt    time.Time    `json:"createdAt,omitzero"`
	UpdatedAt    time.Time    `json:"updatedAt,omitzero"`
}

// FindByID returns the recipe with the given id, or nil.
func FindByID(recipes []Recipe, id int64) *Recipe {
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i]
		}
	}
	return nil
}
