// Package state owns the single authoritative application state and
// its persistence.
//
// # Contract
//
// All reads go through Store.Read; all writes go through Store.Mutate
// or Store.MutateQuiet. Direct field assignment from outside the store
// would bypass both persistence and notification, so State is only
// ever handed out by value and mutated inside the closure the caller
// passes in. There is no history or undo: every mutation overwrites
// the previous value of the fields it touches.
//
// Mutate persists the durable subset and then invokes every subscriber
// synchronously, in registration order, with the committed state.
// MutateQuiet persists but skips notification; it is an escape hatch
// for callers that refresh the affected surface themselves, and any
// observer relying solely on callbacks will miss those updates.
//
// # Persistence
//
// A fixed-key JSON blob holds the persistable subset: shopping list,
// serving selections, sort mode, unit preference, theme preference,
// favorites, ratings, comments. The loaded recipe collection and
// transient UI state are never written. Restoring applies per-field
// presence and shape checks so blobs written by older or newer
// versions of the schema merge cleanly, and a corrupt blob falls back
// to defaults instead of failing startup. Storage errors in either
// direction are logged and swallowed; the in-memory state always wins.
package state
