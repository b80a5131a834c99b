package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the paths and options RecipeBliss runs with.
type Config struct {
	DataDir      string // bbolt database and log file live here
	CatalogDir   string // bundled recipe JSON files plus index.json
	ShareBaseURL string // base URL share links are built on
	Theme        string // "light" or "dark" pins the system appearance
}

const (
	defaultConfigPath   = "~/.config/recipebliss/config.toml"
	defaultDataDir      = "~/.local/share/recipebliss"
	defaultShareBaseURL = "https://recipebliss.app"
)

// Load locates and parses the config file, falling back to defaults
// when it is missing. A present-but-broken file is an error; silently
// ignoring an explicit config would be worse than failing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ShareBaseURL: defaultShareBaseURL}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			cfg.CatalogDir = filepath.Join(cfg.DataDir, "catalog")
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir      string `toml:"data_dir"`
		CatalogDir   string `toml:"catalog_dir"`
		ShareBaseURL string `toml:"share_base_url"`
		Theme        string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataDir = strings.TrimSpace(raw.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	cfg.CatalogDir = strings.TrimSpace(raw.CatalogDir)
	if cfg.CatalogDir == "" {
		cfg.CatalogDir = filepath.Join(cfg.DataDir, "catalog")
	} else {
		cfg.CatalogDir = mustExpand(cfg.CatalogDir)
	}

	if base := strings.TrimSpace(raw.ShareBaseURL); base != "" {
		cfg.ShareBaseURL = strings.TrimRight(base, "/")
	}

	switch theme := strings.ToLower(strings.TrimSpace(raw.Theme)); theme {
	case "", "light", "dark":
		cfg.Theme = theme
	default:
		return Config{}, fmt.Errorf("parse config: theme %q is not light or dark", theme)
	}

	return cfg, nil
}

// DatabasePath returns the path of the bbolt file holding app state
// and user recipes.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "recipebliss.db")
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "recipebliss.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
