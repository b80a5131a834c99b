package recipe

import "testing"

func TestScale(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		factor float64
		want   string
	}{
		{"whole number", "2 cups", 2, "4 cups"},
		{"decimal", "1.5 lbs", 2, "3 lbs"},
		{"fraction", "1/2 cup", 2, "1 cup"},
		{"fraction to decimal", "1/4 tsp", 3, "0.75 tsp"},
		{"rounding", "1 cup", 1.0 / 3.0, "0.33 cup"},
		{"halving", "4 cloves garlic", 0.5, "2 cloves garlic"},
		{"no leading number", "a pinch of salt", 2, "a pinch of salt"},
		{"number not leading", "about 2 cups", 2, "about 2 cups"},
		{"empty", "", 2, ""},
		{"bare number", "3", 2, "6"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Scale(tc.in, tc.factor)
			if got != tc.want {
				t.Fatalf("Scale(%q, %v) = %q, want %q", tc.in, tc.factor, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	val, rest, ok := ParseAmount("2 cups")
	if !ok || val != 2 || rest != " cups" {
		t.Fatalf("ParseAmount(%q) = %v, %q, %v", "2 cups", val, rest, ok)
	}

	val, rest, ok = ParseAmount("1/2 cup")
	if !ok || val != 0.5 || rest != " cup" {
		t.Fatalf("ParseAmount(%q) = %v, %q, %v", "1/2 cup", val, rest, ok)
	}

	_, rest, ok = ParseAmount("handful")
	if ok || rest != "handful" {
		t.Fatalf("ParseAmount(%q) = _, %q, %v, want no number", "handful", rest, ok)
	}

	if _, _, ok := ParseAmount("1/0 cup"); ok {
		t.Fatal("ParseAmount accepted a zero denominator")
	}
}

func TestScaleIngredients(t *testing.T) {
	in := []Ingredient{
		{Name: "Flour", Amount: "2 cups", AmountMetric: "250g"},
		{Name: "Salt", Amount: "a pinch", AmountMetric: "a pinch"},
	}

	out := ScaleIngredients(in, 2)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Amount != "4 cups" || out[0].AmountMetric != "500g" {
		t.Fatalf("scaled flour = %q / %q", out[0].Amount, out[0].AmountMetric)
	}
	if out[1].Amount != "a pinch" {
		t.Fatalf("unscalable amount changed: %q", out[1].Amount)
	}
	if in[0].Amount != "2 cups" {
		t.Fatalf("input mutated: %q", in[0].Amount)
	}
}
