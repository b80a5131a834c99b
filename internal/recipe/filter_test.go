package recipe

import (
	"slices"
	"testing"
)

func sampleRecipes() []Recipe {
	return []Recipe{
		{
			ID: 1, Title: "Quick Pasta", Category: "Dinner",
			Difficulty: DifficultyEasy, CookingStyle: "Stovetop",
			PrepTime: "10 min", CookTime: "15 min", Calories: 450,
			Tags:        []string{"Quick", "Vegetarian"},
			Ingredients: []Ingredient{{Name: "Spaghetti"}, {Name: "Tomatoes"}},
		},
		{
			ID: 2, Title: "Sunday Roast", Category: "Dinner",
			Difficulty: DifficultyHard, CookingStyle: "Roasting",
			PrepTime: "30 min", CookTime: "2 hours", Calories: 800,
			Tags:        []string{"Comfort"},
			Ingredients: []Ingredient{{Name: "Beef"}, {Name: "Potatoes"}},
		},
		{
			ID: 3, Title: "Fruit Salad", Category: "Dessert",
			Difficulty: DifficultyEasy, CookingStyle: "No Cook",
			Tags:        []string{"Quick", "Healthy"},
			Ingredients: []Ingredient{{Name: "Apples"}, {Name: "Grapes"}},
		},
	}
}

func ids(recipes []Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestApply(t *testing.T) {
	recipes := sampleRecipes()

	cases := []struct {
		name    string
		filters Filters
		ratings map[int64]int
		want    []int64
	}{
		{"no filters", Filters{}, nil, []int64{1, 2, 3}},
		{"difficulty", Filters{Difficulties: []Difficulty{DifficultyEasy}}, nil, []int64{1, 3}},
		{"style", Filters{CookingStyles: []string{"Roasting"}}, nil, []int64{2}},
		{"category", Filters{Categories: []string{"Dessert"}}, nil, []int64{3}},
		{"any tag matches", Filters{Tags: []string{"Quick", "Comfort"}}, nil, []int64{1, 2, 3}},
		{"tag excludes", Filters{Tags: []string{"Healthy"}}, nil, []int64{3}},
		// Roast only has "30 min" parseable; fruit salad has no time data and passes.
		{"time range", Filters{Time: &Span{Min: 0, Max: 28}}, nil, []int64{1, 3}},
		{"calorie range", Filters{Calories: &Span{Min: 0, Max: 500}}, nil, []int64{1, 3}},
		{"min rating", Filters{MinRating: 4}, map[int64]int{2: 5, 3: 3}, []int64{2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(recipes, tc.filters, tc.ratings))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Apply = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTotalTime(t *testing.T) {
	r := Recipe{PrepTime: "10 min", CookTime: "25 min"}
	if total, ok := TotalTime(r); !ok || total != 35 {
		t.Fatalf("TotalTime = %d, %v, want 35, true", total, ok)
	}

	r = Recipe{PrepTime: "overnight", CookTime: "a while"}
	if _, ok := TotalTime(r); ok {
		t.Fatal("TotalTime reported data for free-text times")
	}
}

func TestSearch(t *testing.T) {
	recipes := sampleRecipes()

	if got := ids(Search(recipes, "roast")); !slices.Equal(got, []int64{2}) {
		t.Fatalf("title search = %v", got)
	}
	if got := ids(Search(recipes, "potatoes")); !slices.Equal(got, []int64{2}) {
		t.Fatalf("ingredient search = %v", got)
	}
	if got := ids(Search(recipes, "healthy")); !slices.Equal(got, []int64{3}) {
		t.Fatalf("tag search = %v", got)
	}
	if got := ids(Search(recipes, "  ")); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Fatalf("blank query = %v", got)
	}
}

func TestUniqueTags(t *testing.T) {
	got := UniqueTags(sampleRecipes())
	want := []string{"Comfort", "Healthy", "Quick", "Vegetarian"}
	if !slices.Equal(got, want) {
		t.Fatalf("UniqueTags = %v, want %v", got, want)
	}
}

func TestFiltersActive(t *testing.T) {
	if n := (Filters{}).Active(); n != 0 {
		t.Fatalf("empty Active = %d", n)
	}
	f := Filters{
		Difficulties: []Difficulty{DifficultyEasy},
		Tags:         []string{"Quick"},
		Time:         &Span{Min: 0, Max: 60},
		MinRating:    3,
	}
	if n := f.Active(); n != 4 {
		t.Fatalf("Active = %d, want 4", n)
	}
}
