// Package app is the composition root for RecipeBliss.
//
// # Overview
//
// Run wires configuration, logging, storage, the catalog loader, the
// state store, and the UI into the complete application, then blocks
// until the user quits or the context is cancelled.
//
// # Startup Sequence
//
//  1. Load TOML configuration (missing file falls back to defaults)
//  2. Open the JSON log file under the data directory
//  3. Open the bbolt database (state blob + user recipe records)
//  4. Load the bundled recipe catalog (failure logged, not fatal)
//  5. Load user recipe records
//  6. Initialize the state store: restore the persisted subset, merge
//     catalog and user recipes, resolve the theme, parse share params
//  7. Run the TUI with the returned share params
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable config, unwritable data
// directory, database open failure. Everything else degrades: a broken
// catalog or record set is logged and skipped so the app still starts.
//
// # Design Rationale
//
// Orchestration stays minimal; behavior lives in the domain packages
// (recipe, share, shopping, state, storage, ui). The app package only
// connects them.
package app
