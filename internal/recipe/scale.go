package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern captures a leading simple fraction ("1/2") or number
// ("1.5", "2") and the remainder of the string.
var amountPattern = regexp.MustCompile(`^(\d+/\d+|\d+(?:\.\d+)?)(.*)$`)

// ParseAmount extracts the leading numeric token from an amount string.
// It reports whether a number was found; when it was not, val is 1 and
// the remainder is the whole input.
func ParseAmount(s string) (val float64, rest string, ok bool) {
	if s == "" {
		return 0, s, false
	}
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 1, s, false
	}
	tok := m[1]
	if n, d, found := strings.Cut(tok, "/"); found {
		num, _ := strconv.ParseFloat(n, 64)
		den, _ := strconv.ParseFloat(d, 64)
		if den == 0 {
			return 1, s, false
		}
		return num / den, m[2], true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 1, s, false
	}
	return v, m[2], true
}

// Scale multiplies the leading numeric token of an amount string by
// factor, rounded to two decimals, leaving the rest of the string
// untouched. Strings with no leading number come back unchanged; that
// fallback is deliberate and relied on by existing recipe data.
func Scale(s string, factor float64) string {
	val, rest, ok := ParseAmount(s)
	if !ok {
		return s
	}
	scaled := math.Round(val*factor*100) / 100
	return strconv.FormatFloat(scaled, 'f', -1, 64) + rest
}

// ScaleIngredients returns a copy of ingredients with both amount
// strings scaled by factor.
func ScaleIngredients(ingredients []Ingredient, factor float64) []Ingredient {
	if len(ingredients) == 0 {
		return nil
	}
	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Amount = Scale(ing.Amount, factor)
		ing.AmountMetric = Scale(ing.AmountMetric, factor)
		out[i] = ing
	}
	return out
}
