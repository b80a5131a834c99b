package share

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
)

// MaxURLLength caps share links for broad compatibility with browsers
// and link-sharing surfaces.
const MaxURLLength = 2000

// Query parameter names carried on the app's base URL.
const (
	paramRecipe       = "recipe"
	paramBasket       = "basket"
	paramSharedRecipe = "shared_recipe"
)

// RecipeURL builds a share-by-reference link for a catalog recipe.
func RecipeURL(base string, id int64) string {
	return fmt.Sprintf("%s?%s=%d", base, paramRecipe, id)
}

// BasketURL encodes the basket and builds its share link, or ErrTooLong
// when the result would exceed MaxURLLength.
func BasketURL(base string, items []shopping.Item, selections map[int64]int, useMetric bool) (string, error) {
	encoded, err := EncodeBasket(items, selections, useMetric)
	if err != nil {
		return "", err
	}
	link := fmt.Sprintf("%s?%s=%s", base, paramBasket, encoded)
	if len(link) > MaxURLLength {
		return "", ErrTooLong
	}
	return link, nil
}

// RecipeLink builds the share link for any recipe: catalog recipes go
// by reference, user-created and imported ones by value.
func RecipeLink(base string, r recipe.Recipe) (string, error) {
	if recipe.IsCatalogID(r.ID) && !r.UserCreated && !r.Shared {
		return RecipeURL(base, r.ID), nil
	}

	encoded, err := EncodeRecipe(r)
	if err != nil {
		return "", err
	}
	link := fmt.Sprintf("%s?%s=%s", base, paramSharedRecipe, encoded)
	if len(link) > MaxURLLength {
		return "", ErrTooLong
	}
	return link, nil
}

// Params holds the sharing parameters found on an opened URL. Zero
// values mean the parameter was absent.
type Params struct {
	RecipeID     int64  // recipe=<id>, open catalog recipe directly
	Basket       string // basket=<encoded>, offer basket import
	SharedRecipe string // shared_recipe=<encoded>, offer recipe import
}

// Empty reports whether no share parameter was present.
func (p Params) Empty() bool {
	return p == Params{}
}

// ParseParams extracts the share parameters from a raw URL. Anything
// unparseable yields empty Params; opening a bad link is never fatal.
func ParseParams(rawURL string) Params {
	if rawURL == "" {
		return Params{}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Params{}
	}
	q := u.Query()

	var p Params
	if v := q.Get(paramRecipe); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			p.RecipeID = id
		}
	}
	p.Basket = q.Get(paramBasket)
	p.SharedRecipe = q.Get(paramSharedRecipe)
	return p
}
