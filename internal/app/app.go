package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joshd667/RecipeBliss/internal/config"
	"github.com/Joshd667/RecipeBliss/internal/logging"
	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/state"
	"github.com/Joshd667/RecipeBliss/internal/storage"
	"github.com/Joshd667/RecipeBliss/internal/ui"
)

// Options configure the RecipeBliss application.
type Options struct {
	ConfigPath string
	ShareURL   string // share link the app was opened with, if any
}

// Run boots the RecipeBliss TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log, closeLog := logging.Open(cfg.LogPath())
	defer closeLog()

	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// A broken or missing catalog is not fatal; the user's own
	// recipes still work.
	catalog, err := recipe.LoadCatalog(cfg.CatalogDir, log)
	if err != nil {
		log.Warn("load catalog", "dir", cfg.CatalogDir, "error", err)
	}

	userRecipes, err := db.AllRecipes()
	if err != nil {
		log.Warn("load user recipes", "error", err)
	}

	store := state.New(db, log)
	themes := ui.NewThemeFeed()

	// The config theme pins what "system" resolves to; otherwise the
	// terminal background decides.
	systemDark := lipgloss.HasDarkBackground()
	if cfg.Theme != "" {
		systemDark = cfg.Theme == "dark"
	}

	params := store.Initialize(state.InitOptions{
		Catalog:     catalog,
		UserRecipes: userRecipes,
		RawURL:      opts.ShareURL,
		Theme:       themes,
		SystemDark:  systemDark,
	})

	log.Info("starting",
		"catalog_recipes", len(catalog),
		"user_recipes", len(userRecipes),
		"share_params", !params.Empty())

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Records:    db,
		Theme:      themes,
		ShareBase:  cfg.ShareBaseURL,
		Params:     params,
		DataDir:    cfg.DataDir,
		CatalogDir: cfg.CatalogDir,
		Log:        log,
	})
}
