package share

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
)

// legacyEncode reproduces the pre-compression encoder: percent-encode
// the JSON the way encodeURIComponent does, then standard base64.
func legacyEncode(jsonText string) string {
	const keep = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~*'()"
	var b strings.Builder
	for i := 0; i < len(jsonText); i++ {
		c := jsonText[i]
		if strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteString("%" + strings.ToUpper(hex.EncodeToString([]byte{c})))
	}
	return base64.StdEncoding.EncodeToString([]byte(b.String()))
}

func TestBasketRoundTrip(t *testing.T) {
	items := []shopping.Item{
		{ID: "old-1", Name: "Flour", Amount: "2 cups", AmountMetric: "250g", Category: "Baking", Aisle: "4", Checked: true},
		{ID: "old-2", Name: "Milk", Amount: "1 pint", AmountMetric: "500ml", Category: "Dairy", Aisle: "2"},
		{ID: "old-3", Name: "Basil", Amount: "a handful", AmountMetric: "a handful"},
	}
	selections := map[int64]int{3: 6, 7: 2}

	encoded, err := EncodeBasket(items, selections, false)
	if err != nil {
		t.Fatalf("EncodeBasket: %v", err)
	}
	if encoded[0] != tagDeflate {
		t.Fatalf("encoded payload not tagged: %q", encoded[:8])
	}

	basket, err := DecodeBasket(encoded)
	if err != nil {
		t.Fatalf("DecodeBasket: %v", err)
	}
	if len(basket.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(basket.Items))
	}

	seen := make(map[string]bool)
	for i, got := range basket.Items {
		want := items[i]
		if got.Name != want.Name || got.Amount != want.Amount || got.Category != want.Category || got.Aisle != want.Aisle {
			t.Fatalf("item %d = %+v, want fields of %+v", i, got, want)
		}
		if got.Checked {
			t.Fatalf("item %d arrived checked", i)
		}
		if got.ID == "" || got.ID == want.ID || seen[got.ID] {
			t.Fatalf("item %d id not fresh and unique: %q", i, got.ID)
		}
		seen[got.ID] = true
	}

	if basket.Selections[3] != 6 || basket.Selections[7] != 2 {
		t.Fatalf("selections = %v", basket.Selections)
	}
	if basket.UseMetric {
		t.Fatal("UseMetric = true, want false")
	}
}

func TestBasketEncodesActiveUnitOnly(t *testing.T) {
	items := []shopping.Item{
		{ID: "x", Name: "Flour", Amount: "2 cups", AmountMetric: "250g"},
	}

	encoded, err := EncodeBasket(items, nil, true)
	if err != nil {
		t.Fatalf("EncodeBasket: %v", err)
	}
	basket, err := DecodeBasket(encoded)
	if err != nil {
		t.Fatalf("DecodeBasket: %v", err)
	}

	// The inactive unit is not recoverable; both amounts carry the
	// metric string the sender shared.
	if basket.Items[0].Amount != "250g" || basket.Items[0].AmountMetric != "250g" {
		t.Fatalf("amounts = %q / %q, want 250g / 250g", basket.Items[0].Amount, basket.Items[0].AmountMetric)
	}
	if !basket.UseMetric {
		t.Fatal("UseMetric = false, want true")
	}
}

func TestDecodeBasket_LegacyAbbreviatedNames(t *testing.T) {
	encoded := legacyEncode(`{"items":[{"n":"Flour","a":"2 cups","c":true,"cat":"Baking","aisle":"4"}],"r":{"3":6},"m":true}`)

	basket, err := DecodeBasket(encoded)
	if err != nil {
		t.Fatalf("DecodeBasket: %v", err)
	}
	it := basket.Items[0]
	if it.Name != "Flour" || it.Amount != "2 cups" || it.Category != "Baking" || it.Aisle != "4" {
		t.Fatalf("item = %+v", it)
	}
	if it.Checked {
		t.Fatal("legacy checked state survived")
	}
	if basket.Selections[3] != 6 || !basket.UseMetric {
		t.Fatalf("selections = %v, metric = %v", basket.Selections, basket.UseMetric)
	}
}

func TestDecodeBasket_LegacyFullNames(t *testing.T) {
	encoded := legacyEncode(`{"items":[{"name":"Olive Oil","amount":"3 tbsp","category":"Pantry"}],"selectedRecipes":{"5":4},"useMetric":false}`)

	basket, err := DecodeBasket(encoded)
	if err != nil {
		t.Fatalf("DecodeBasket: %v", err)
	}
	it := basket.Items[0]
	if it.Name != "Olive Oil" || it.Amount != "3 tbsp" || it.Category != "Pantry" {
		t.Fatalf("item = %+v", it)
	}
	if basket.Selections[5] != 4 {
		t.Fatalf("selections = %v", basket.Selections)
	}
}

func TestDecodeBasket_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "!!not base64!!"},
		{"tagged garbage", "c$$$$"},
		{"tagged truncated", string(tagDeflate) + "AAAA"},
		{"legacy not json", legacyEncode("hello world")},
		{"legacy wrong shape", legacyEncode(`{"other": 1}`)},
		{"legacy items not array", legacyEncode(`{"items": 5}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			basket, err := DecodeBasket(tc.encoded)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if basket != nil {
				t.Fatalf("partial basket escaped: %+v", basket)
			}
		})
	}
}

func TestRecipeRoundTrip(t *testing.T) {
	orig := recipe.Recipe{
		ID:           recipe.NewID(),
		Title:        "Shakshuka",
		Description:  "Eggs poached in spiced tomato sauce.",
		Category:     "Brunch",
		Origin:       "Middle Eastern",
		PrepTime:     "10 min",
		CookTime:     "25 min",
		Servings:     2,
		Difficulty:   recipe.DifficultyMedium,
		CookingStyle: "One Pot",
		Calories:     420,
		Ingredients: []recipe.Ingredient{
			{Name: "Eggs", Amount: "4", AmountMetric: "4"},
			{Name: "Crushed tomatoes", Amount: "14 oz", AmountMetric: "400g"},
		},
		Steps:       []string{"Simmer the sauce.", "Crack in the eggs.", "Cover until just set."},
		Tips:        []string{"Serve with crusty bread."},
		Tags:        []string{"Vegetarian", "Spicy"},
		Image:       "data:image/png;base64,AAAA",
		UserCreated: true,
	}

	encoded, err := EncodeRecipe(orig)
	if err != nil {
		t.Fatalf("EncodeRecipe: %v", err)
	}

	got, err := DecodeRecipe(encoded)
	if err != nil {
		t.Fatalf("DecodeRecipe: %v", err)
	}

	if got.Title != orig.Title || got.Description != orig.Description ||
		got.Category != orig.Category || got.Origin != orig.Origin ||
		got.PrepTime != orig.PrepTime || got.CookTime != orig.CookTime ||
		got.Servings != orig.Servings || got.Difficulty != orig.Difficulty ||
		got.CookingStyle != orig.CookingStyle || got.Calories != orig.Calories {
		t.Fatalf("scalar fields differ: %+v", got)
	}
	if len(got.Ingredients) != 2 || got.Ingredients[1] != orig.Ingredients[1] {
		t.Fatalf("ingredients = %+v", got.Ingredients)
	}
	if len(got.Steps) != 3 || got.Steps[2] != orig.Steps[2] {
		t.Fatalf("steps = %+v", got.Steps)
	}
	if len(got.Tips) != 1 || len(got.Tags) != 2 {
		t.Fatalf("tips/tags = %+v / %+v", got.Tips, got.Tags)
	}
	if got.Image != "" {
		t.Fatal("image travelled in the share link")
	}
	if got.ID == orig.ID || recipe.IsCatalogID(got.ID) {
		t.Fatalf("id = %d, want fresh generated id", got.ID)
	}
	if !got.Shared {
		t.Fatal("decoded recipe not marked shared")
	}
}

func TestDecodeRecipe_RequiresTag(t *testing.T) {
	if _, err := DecodeRecipe(legacyEncode(`{"t":"X"}`)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if _, err := DecodeRecipe(""); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestEndToEndScenario(t *testing.T) {
	r := recipe.Recipe{
		ID:       12,
		Servings: 4,
		Ingredients: []recipe.Ingredient{
			{Name: "Rice", Amount: "2 cups", AmountMetric: "400g"},
			{Name: "Stock", Amount: "4 cups", AmountMetric: "1l"},
			{Name: "Peas", Amount: "1 cup", AmountMetric: "150g"},
		},
	}

	// Double the recipe, US units.
	items := shopping.FromRecipe(r, 8)
	if items[0].Amount != "4 cups" {
		t.Fatalf("scaled amount = %q, want 4 cups", items[0].Amount)
	}

	encoded, err := EncodeBasket(items, map[int64]int{12: 8}, false)
	if err != nil {
		t.Fatalf("EncodeBasket: %v", err)
	}
	basket, err := DecodeBasket(encoded)
	if err != nil {
		t.Fatalf("DecodeBasket: %v", err)
	}

	if len(basket.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(basket.Items))
	}
	for i, it := range basket.Items {
		if it.Checked {
			t.Fatalf("item %d checked", i)
		}
		if it.Name != r.Ingredients[i].Name {
			t.Fatalf("item %d name = %q", i, it.Name)
		}
	}
	if basket.Items[0].Amount != "4 cups" {
		t.Fatalf("amount = %q, want 4 cups", basket.Items[0].Amount)
	}
}

// randomName returns an incompressible item name for size-guard tests.
func randomName(t *testing.T, n int) string {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand: %v", err)
	}
	return hex.EncodeToString(b)
}
