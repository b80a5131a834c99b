package recipe

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Span is an inclusive numeric range used by the time and calorie filters.
type Span struct {
	Min int
	Max int
}

// Contains reports whether v falls inside the span.
func (s Span) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Filters holds the active browse criteria. Nil spans and empty slices
// mean the corresponding criterion is inactive.
type Filters struct {
	Difficulties  []Difficulty
	CookingStyles []string
	Tags          []string
	Categories    []string
	Time          *Span // total minutes
	Calories      *Span
	MinRating     int // 1-5, 0 = inactive
}

// Active returns the number of criteria currently in effect, for the
// filter-count badge.
func (f Filters) Active() int {
	n := 0
	if len(f.Difficulties) > 0 {
		n++
	}
	if len(f.CookingStyles) > 0 {
		n++
	}
	if len(f.Tags) > 0 {
		n++
	}
	if len(f.Categories) > 0 {
		n++
	}
	if f.Time != nil {
		n++
	}
	if f.Calories != nil {
		n++
	}
	if f.MinRating > 0 {
		n++
	}
	return n
}

var minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*min`)

func parseMinutes(s string) int {
	m := minutesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// TotalTime sums the prep and cook durations in minutes. Times are
// free-text; only a "N min" token counts. ok is false when neither
// field yields a number, so callers can skip time filtering for
// recipes without time data.
func TotalTime(r Recipe) (minutes int, ok bool) {
	total := parseMinutes(r.PrepTime) + parseMinutes(r.CookTime)
	return total, total > 0
}

// Apply returns the recipes matching every active criterion. Ratings
// are per-user and live outside the recipe records, so the caller
// passes its rating map for the minimum-rating criterion.
func Apply(recipes []Recipe, f Filters, ratings map[int64]int) []Recipe {
	var out []Recipe
	for _, r := range recipes {
		if !matches(r, f, ratings) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Recipe, f Filters, ratings map[int64]int) bool {
	if len(f.Difficulties) > 0 && !slices.Contains(f.Difficulties, r.Difficulty) {
		return false
	}
	if len(f.CookingStyles) > 0 && !slices.Contains(f.CookingStyles, r.CookingStyle) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
		return false
	}
	if len(f.Tags) > 0 {
		any := false
		for _, tag := range r.Tags {
			if slices.Contains(f.Tags, tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if f.Time != nil {
		// Recipes without time data pass rather than vanish.
		if total, ok := TotalTime(r); ok && !f.Time.Contains(total) {
			return false
		}
	}
	if f.Calories != nil && r.Calories > 0 && !f.Calories.Contains(r.Calories) {
		return false
	}
	if f.MinRating > 0 && ratings[r.ID] < f.MinRating {
		return false
	}
	return true
}

// Search narrows recipes to those whose title, description, category,
// tags, or ingredient names contain the query, case-insensitively.
// An empty query returns the input unchanged.
func Search(recipes []Recipe, query string) []Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return recipes
	}
	var out []Recipe
	for _, r := range recipes {
		if searchMatch(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func searchMatch(r Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Category), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

// UniqueTags collects the distinct tags across a recipe set, sorted.
func UniqueTags(recipes []Recipe) []string {
	seen := make(map[string]struct{})
	for _, r := range recipes {
		for _, tag := range r.Tags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
