// Package recipe defines the recipe data model and the pure operations
// on it: catalog loading, ingredient scaling, filtering, and search.
//
// Ingredient amounts are opaque display strings ("2 cups", "500g"),
// one per unit system. Scaling adjusts only a leading numeric token and
// returns the input unchanged when none is found; that lossy fallback
// is part of the contract because existing recipe data depends on it.
//
// Recipe ids are split into two ranges: catalog recipes use small
// stable ids assigned in the bundled JSON files, user-created and
// imported recipes use large random ids from NewID. The split is what
// lets share links reference catalog recipes by bare id while
// user recipes travel by value.
package recipe
