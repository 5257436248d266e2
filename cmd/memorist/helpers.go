package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/memorist/memorist/internal/config"
	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/database"
	"github.com/memorist/memorist/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// openRepository opens the configured database and wraps it in the
// collection repository. The returned closer must be called when the
// command is done with the repository.
func openRepository(ctx context.Context, cfg *config.Config) (*store.Repository, func() error, error) {
	if cfg.Database.Driver == database.DriverSQLite || cfg.Database.Driver == "" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
			}
		}
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	kv, err := store.NewSQLKV(ctx, db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("failed to close the database", "error", closeErr)
		}
		return nil, nil, fmt.Errorf("store.NewSQLKV() > %w", err)
	}
	return store.NewRepository(kv, slog.Default()), db.Close, nil
}

func loadDecks(cfg *config.Config) ([]content.Deck, error) {
	decks, err := content.LoadDecks(cfg.Decks.Directory)
	if err != nil {
		return nil, fmt.Errorf("content.LoadDecks(%s) > %w", cfg.Decks.Directory, err)
	}
	return decks, nil
}
