package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blahpunk/shotlist/internal/service"
	"github.com/blahpunk/shotlist/internal/storage"
	"github.com/blahpunk/shotlist/internal/woo"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/shotlist/shotlist.db"
	}
	dbPath = expandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newCatalogSource builds a WooCommerce client from config. The progress
// callback, when non-nil, is invoked per fetched page.
func newCatalogSource(progress func(items int)) (*woo.Client, error) {
	cfg := woo.Config{
		BaseURL:      viper.GetString("woo.url"),
		Key:          viper.GetString("woo.key"),
		Secret:       viper.GetString("woo.secret"),
		PageProgress: progress,
	}
	return woo.NewClient(cfg)
}

// expandPath expands ~ and environment variables in a file path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
