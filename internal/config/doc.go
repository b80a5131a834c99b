// Package config handles loading and parsing the RecipeBliss configuration file.
//
// # Overview
//
// This package reads a small TOML file to discover where the app keeps its
// data, where the bundled recipe catalog lives, and what base URL share
// links are built on.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/recipebliss/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/recipebliss/config.toml
//   - Data directory: ~/.local/share/recipebliss
//   - Catalog directory: <data_dir>/catalog
//   - Share base URL: https://recipebliss.app
//   - Database: <data_dir>/recipebliss.db
//   - Log file: <data_dir>/recipebliss.log
//
// # TOML Format
//
// Example config.toml:
//
//	data_dir = "~/.local/share/recipebliss"
//	catalog_dir = "/usr/share/recipebliss/catalog"
//	share_base_url = "https://recipebliss.app"
//	theme = "dark"
//
// All fields are optional. Tilde expansion is performed automatically, and a
// trailing slash on share_base_url is stripped. When theme is set to "light"
// or "dark" it pins what the "system" appearance resolves to; any other
// non-empty value is a load error.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows RecipeBliss to work out-of-the-box without configuration.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
