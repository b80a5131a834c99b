package ui

import (
	"testing"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/share"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
	"github.com/Joshd667/RecipeBliss/internal/state"
)

func testCatalog() []recipe.Recipe {
	return []recipe.Recipe{
		{ID: 1, Title: "Pancakes", Servings: 4, Difficulty: recipe.DifficultyEasy,
			Ingredients: []recipe.Ingredient{{Name: "Flour", Amount: "2 cups", AmountMetric: "250g"}}},
		{ID: 2, Title: "Ramen", Servings: 2, Difficulty: recipe.DifficultyHard,
			Ingredients: []recipe.Ingredient{{Name: "Noodles", Amount: "2 portions", AmountMetric: "200g"}}},
	}
}

func newTestModel(t *testing.T, params share.Params) Model {
	t.Helper()
	store := state.New(nil, nil)
	store.Initialize(state.InitOptions{Catalog: testCatalog()})
	return New(Options{Store: store, Params: params, ShareBase: "https://recipebliss.example/app"})
}

func TestQueueImport_RecipeReferenceOpensDetail(t *testing.T) {
	m := newTestModel(t, share.Params{RecipeID: 2})
	if m.st.SelectedID != 2 {
		t.Fatalf("SelectedID = %d, want 2", m.st.SelectedID)
	}
	if m.importing != importNone {
		t.Fatalf("importing = %v, want none", m.importing)
	}
}

func TestQueueImport_UnknownRecipeReference(t *testing.T) {
	m := newTestModel(t, share.Params{RecipeID: 99})
	if m.st.SelectedID != 0 {
		t.Fatalf("SelectedID = %d, want 0", m.st.SelectedID)
	}
	if m.status == "" {
		t.Fatal("expected a status message")
	}
}

func TestQueueImport_BasketIntoEmptyListImportsDirectly(t *testing.T) {
	items := []shopping.Item{shopping.NewItem("Milk", "1 pint", "500ml", "Dairy", "3")}
	encoded, err := share.EncodeBasket(items, nil, false)
	if err != nil {
		t.Fatalf("EncodeBasket: %v", err)
	}

	m := newTestModel(t, share.Params{Basket: encoded})
	if m.importing != importNone {
		t.Fatalf("importing = %v, want direct import", m.importing)
	}
	if len(m.st.ShoppingList) != 1 || m.st.ShoppingList[0].Name != "Milk" {
		t.Fatalf("ShoppingList = %+v", m.st.ShoppingList)
	}
}

func TestQueueImport_BasketWithExistingListPrompts(t *testing.T) {
	items := []shopping.Item{shopping.NewItem("Milk", "1 pint", "500ml", "Dairy", "3")}
	encoded, err := share.EncodeBasket(items, nil, false)
	if err != nil {
		t.Fatalf("EncodeBasket: %v", err)
	}

	store := state.New(nil, nil)
	store.Initialize(state.InitOptions{Catalog: testCatalog()})
	store.Mutate(func(st *state.State) {
		st.ShoppingList = []shopping.Item{shopping.NewItem("Eggs", "6", "6", "Dairy", "3")}
	})

	m := New(Options{Store: store, Params: share.Params{Basket: encoded}})
	if m.importing != importBasket {
		t.Fatalf("importing = %v, want basket prompt", m.importing)
	}

	// Merge keeps the old item and appends the shared one.
	m.applyBasket(m.pendingBasket, true)
	if len(m.st.ShoppingList) != 2 {
		t.Fatalf("merged list = %+v", m.st.ShoppingList)
	}
}

func TestApplyBasket_ReplaceAdoptsBasket(t *testing.T) {
	store := state.New(nil, nil)
	store.Initialize(state.InitOptions{})
	store.Mutate(func(st *state.State) {
		st.ShoppingList = []shopping.Item{shopping.NewItem("Eggs", "6", "6", "Dairy", "3")}
	})

	m := New(Options{Store: store})
	basket := &share.Basket{
		Items:      []shopping.Item{shopping.NewItem("Rice", "2 cups", "400g", "Pantry", "7")},
		Selections: map[int64]int{5: 4},
		UseMetric:  true,
	}
	m.applyBasket(basket, false)

	if len(m.st.ShoppingList) != 1 || m.st.ShoppingList[0].Name != "Rice" {
		t.Fatalf("ShoppingList = %+v", m.st.ShoppingList)
	}
	if !m.st.UseMetric || m.st.SelectedServings[5] != 4 {
		t.Fatalf("metric %v, selections %v", m.st.UseMetric, m.st.SelectedServings)
	}
}

func TestQueueImport_MalformedBasketDegrades(t *testing.T) {
	m := newTestModel(t, share.Params{Basket: "!!not-encoded!!"})
	if m.importing != importNone {
		t.Fatalf("importing = %v, want none", m.importing)
	}
	if m.status == "" {
		t.Fatal("expected a status message")
	}
}

func TestVisibleRecipes(t *testing.T) {
	st := state.State{Recipes: testCatalog()}
	if got := len(visibleRecipes(st)); got != 2 {
		t.Fatalf("unfiltered = %d recipes", got)
	}

	st.Query = "ramen"
	if got := visibleRecipes(st); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("query result = %+v", got)
	}

	st.Query = ""
	st.Filters.Difficulties = []recipe.Difficulty{recipe.DifficultyEasy}
	if got := visibleRecipes(st); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("filter result = %+v", got)
	}
}

func TestShoppingRows_HeadingsAndItems(t *testing.T) {
	st := state.State{
		SortMode: shopping.SortByCategory,
		ShoppingList: []shopping.Item{
			shopping.NewItem("Milk", "1 pint", "500ml", "Dairy", "3"),
			shopping.NewItem("Apples", "4", "4", "Produce", "1"),
			shopping.NewItem("Cheese", "1 block", "200g", "Dairy", "3"),
		},
	}

	rows := shoppingRows(st)
	var headings []string
	items := 0
	for _, row := range rows {
		if row.heading != "" {
			headings = append(headings, row.heading)
		} else {
			items++
		}
	}
	if items != 3 {
		t.Fatalf("items = %d, want 3", items)
	}
	if len(headings) != 2 || headings[0] != "Dairy" || headings[1] != "Produce" {
		t.Fatalf("headings = %v", headings)
	}
}

func TestParseItemEntry(t *testing.T) {
	item, ok := parseItemEntry("Olive oil, 1 tbsp, Pantry, 7")
	if !ok {
		t.Fatal("parse failed")
	}
	if item.Name != "Olive oil" || item.Amount != "1 tbsp" || item.Category != "Pantry" || item.Aisle != "7" {
		t.Fatalf("item = %+v", item)
	}
	if item.ID == "" || item.Checked {
		t.Fatalf("item not initialized: %+v", item)
	}

	if item, ok := parseItemEntry("Salt"); !ok || item.Name != "Salt" {
		t.Fatalf("bare name: %+v, %v", item, ok)
	}

	if _, ok := parseItemEntry("  , 2 cups"); ok {
		t.Fatal("empty name accepted")
	}
}

func TestNextSortMode(t *testing.T) {
	if got := nextSortMode(shopping.SortByAisle); got != shopping.SortByCategory {
		t.Fatalf("after aisle = %q", got)
	}
	if got := nextSortMode(shopping.SortAlpha); got != shopping.SortByAisle {
		t.Fatalf("after alpha = %q", got)
	}
}

func TestCycleSpan(t *testing.T) {
	span := cycleSpan(nil, timeSpans, 1)
	if span == nil || span.Max != 30 {
		t.Fatalf("first step = %+v", span)
	}
	span = cycleSpan(span, timeSpans, 1)
	if span == nil || span.Max != 60 {
		t.Fatalf("second step = %+v", span)
	}
	last := timeSpans[len(timeSpans)-1]
	if got := cycleSpan(&last, timeSpans, 1); got != nil {
		t.Fatalf("past the end = %+v", got)
	}
	first := timeSpans[0]
	if got := cycleSpan(&first, timeSpans, -1); got != nil {
		t.Fatalf("before the start = %+v", got)
	}
}

func TestToggleValue(t *testing.T) {
	list := toggleValue(nil, "vegan")
	if len(list) != 1 {
		t.Fatalf("add = %v", list)
	}
	list = toggleValue(list, "quick")
	list = toggleValue(list, "vegan")
	if len(list) != 1 || list[0] != "quick" {
		t.Fatalf("remove = %v", list)
	}
}

func TestCycleThemeMode(t *testing.T) {
	if got := cycleThemeMode(state.ThemeSystem, false); got != state.ThemeLight {
		t.Fatalf("system -> %q", got)
	}
	if got := cycleThemeMode(state.ThemeDark, false); got != state.ThemeSystem {
		t.Fatalf("dark -> %q", got)
	}
	if got := cycleThemeMode(state.ThemeSystem, true); got != state.ThemeDark {
		t.Fatalf("system back -> %q", got)
	}
}

func TestFormBuild(t *testing.T) {
	f := newRecipeForm()

	if _, err := f.build(); err == nil {
		t.Fatal("empty form built without error")
	}

	f.inputs[formTitle].SetValue("Garden Salad")
	if _, err := f.build(); err == nil {
		t.Fatal("form without ingredients built without error")
	}

	f.inputs[formIngredient].SetValue("Lettuce, 1 head, 1 head")
	f.addEntry(f.rows[11])
	f.inputs[formStep].SetValue("Toss everything together.")
	f.addEntry(f.rows[12])
	f.inputs[formServings].SetValue("2")
	f.inputs[formTags].SetValue("fresh, quick")

	r, err := f.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if r.Title != "Garden Salad" || r.Servings != 2 {
		t.Fatalf("built = %+v", r)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0].Name != "Lettuce" || r.Ingredients[0].Amount != "1 head" {
		t.Fatalf("ingredients = %+v", r.Ingredients)
	}
	if len(r.Steps) != 1 {
		t.Fatalf("steps = %+v", r.Steps)
	}
	if len(r.Tags) != 2 || r.Tags[1] != "quick" {
		t.Fatalf("tags = %+v", r.Tags)
	}

	// Entry inputs clear after each add.
	if f.inputs[formIngredient].Value() != "" {
		t.Fatal("ingredient entry not cleared")
	}
}

func TestDetailServings(t *testing.T) {
	r := testCatalog()[0] // 4 servings
	st := state.State{SelectedServings: map[int64]int{}}
	if got := detailServings(st, r); got != 4 {
		t.Fatalf("default = %d", got)
	}
	st.SelectedServings[r.ID] = 6
	if got := detailServings(st, r); got != 6 {
		t.Fatalf("chosen = %d", got)
	}
}
