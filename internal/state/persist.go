package state

import (
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/Joshd667/RecipeBliss/internal/shopping"
)

// stateKey is the fixed key the snapshot blob lives under.
const stateKey = "app-state"

// persisted is the durable subset of State. The schema is additive:
// new optional fields may appear over time, and old blobs missing them
// must restore cleanly. Loaded recipes, the current selection, filters,
// and other transient UI state deliberately never appear here.
type persisted struct {
	ShoppingList     []shopping.Item     `json:"shoppingList"`
	SelectedServings map[int64]int       `json:"selectedRecipes"`
	SortMode         string              `json:"sortMode"`
	UseMetric        bool                `json:"useMetric"`
	ThemeMode        string              `json:"themeMode"`
	Favorites        []int64             `json:"favorites"`
	Ratings          map[int64]int       `json:"ratings"`
	Comments         map[int64][]Comment `json:"comments"`
}

// snapshot projects the persistable subset out of the full state.
func snapshot(st State) persisted {
	favorites := make([]int64, 0, len(st.Favorites))
	for id, on := range st.Favorites {
		if on {
			favorites = append(favorites, id)
		}
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i] < favorites[j] })

	return persisted{
		ShoppingList:     st.ShoppingList,
		SelectedServings: st.SelectedServings,
		SortMode:         string(st.SortMode),
		UseMetric:        st.UseMetric,
		ThemeMode:        string(st.ThemeMode),
		Favorites:        favorites,
		Ratings:          st.Ratings,
		Comments:         st.Comments,
	}
}

// restore merges a stored blob into st, field by field. Every field is
// checked for presence and shape independently; a wrong-typed or
// missing field keeps its default rather than poisoning the rest of
// the blob. A blob that is not a JSON object at all is discarded
// whole. Nothing here ever fails the caller.
func restore(raw []byte, st *State, log *slog.Logger) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Warn("discarding unreadable state blob", "error", err)
		return
	}

	restoreField(fields, "shoppingList", &st.ShoppingList, log)
	restoreField(fields, "useMetric", &st.UseMetric, log)

	var servings map[int64]int
	if restoreField(fields, "selectedRecipes", &servings, log) && servings != nil {
		st.SelectedServings = servings
	}

	var sortMode string
	if restoreField(fields, "sortMode", &sortMode, log) {
		switch m := shopping.SortMode(sortMode); m {
		case shopping.SortByAisle, shopping.SortByCategory, shopping.SortAlpha:
			st.SortMode = m
		}
	}

	var themeMode string
	if restoreField(fields, "themeMode", &themeMode, log) {
		switch m := ThemeMode(themeMode); m {
		case ThemeLight, ThemeDark, ThemeSystem:
			st.ThemeMode = m
		}
	}

	var favorites []int64
	if restoreField(fields, "favorites", &favorites, log) {
		for _, id := range favorites {
			st.Favorites[id] = true
		}
	}

	var ratings map[int64]int
	if restoreField(fields, "ratings", &ratings, log) {
		for id, stars := range ratings {
			if stars >= 1 && stars <= 5 {
				st.Ratings[id] = stars
			}
		}
	}

	var comments map[int64][]Comment
	if restoreField(fields, "comments", &comments, log) {
		for id, list := range comments {
			if len(list) > 0 {
				st.Comments[id] = list
			}
		}
	}
}

// restoreField decodes one field when present and well-shaped,
// reporting whether dst was written. Malformed values are rejected,
// never coerced.
func restoreField[T any](fields map[string]json.RawMessage, key string, dst *T, log *slog.Logger) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("discarding persisted field", "field", key, "error", err)
		return false
	}
	*dst = v
	return true
}
