package recipe

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// userIDFloor splits the id space: everything below is reserved for
// catalog recipes, everything at or above is generated.
const userIDFloor = int64(1) << 32

// NewID returns a random positive id for a user-created or imported
// recipe, always above the catalog id range.
func NewID() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fallback -- should never happen.
		return userIDFloor + time.Now().UnixNano()%userIDFloor
	}
	v := int64(binary.BigEndian.Uint64(b[:]) >> 1)
	if v < userIDFloor {
		v += userIDFloor
	}
	return v
}

// IsCatalogID reports whether an id falls in the catalog range. Catalog
// recipes are shared by reference (the id goes in the URL); generated
// ids have to be shared by value because the receiver cannot look them up.
func IsCatalogID(id int64) bool {
	return id > 0 && id < userIDFloor
}
