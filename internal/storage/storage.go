// Package storage provides the two durable stores backing the app: a
// small key-value bucket holding the persisted state blob, and a
// record store holding full user-authored recipe documents. Both live
// in a single bbolt file under the data directory.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
)

var (
	bucketState   = []byte("state")
	bucketRecipes = []byte("recipes")
)

// DB wraps the bbolt handle shared by the KV and recipe stores.
type DB struct {
	bolt *bolt.DB
}

// Open opens (creating if needed) the database file and its buckets.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketState, bucketRecipes} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &DB{bolt: db}, nil
}

// Close releases the database file.
func (d *DB) Close() error {
	return d.bolt.Close()
}

// Get returns the value stored under key in the state bucket, or nil
// when absent.
func (d *DB) Get(key string) ([]byte, error) {
	var out []byte
	err := d.bolt.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketState).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return out, nil
}

// Put stores value under key in the state bucket.
func (d *DB) Put(key string, value []byte) error {
	err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the state bucket. Missing keys are not an
// error.
func (d *DB) Delete(key string) error {
	err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func recipeKey(id int64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(id))
	return k[:]
}

// AllRecipes returns every user-authored or imported recipe record.
func (d *DB) AllRecipes() ([]recipe.Recipe, error) {
	var out []recipe.Recipe
	err := d.bolt.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRecipes).ForEach(func(_, v []byte) error {
			var r recipe.Recipe
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("decode recipe record: %w", err)
			}
			out = append(out, r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	return out, nil
}

// PutRecipe inserts or replaces a recipe record. A zero id gets a
// fresh generated one; creation and update timestamps are stamped
// here. The stored record is returned so callers see the assigned
// fields.
func (d *DB) PutRecipe(r recipe.Recipe) (recipe.Recipe, error) {
	if r.ID == 0 {
		r.ID = recipe.NewID()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	// Imported shared recipes keep their flag; everything else stored
	// here is user-authored.
	if !r.Shared {
		r.UserCreated = true
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("encode recipe record: %w", err)
	}
	err = d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRecipes).Put(recipeKey(r.ID), raw)
	})
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("save recipe %d: %w", r.ID, err)
	}
	return r, nil
}

// DeleteRecipe removes a recipe record by id.
func (d *DB) DeleteRecipe(id int64) error {
	err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRecipes).Delete(recipeKey(id))
	})
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	return nil
}
