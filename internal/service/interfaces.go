// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/blahpunk/shotlist/internal/model"
)

// CatalogSource is the remote store the planner pulls from. All three
// calls may block on network I/O; any failure aborts the sync in progress
// without touching the previously committed catalog snapshot.
type CatalogSource interface {
	FetchCategories(ctx context.Context) ([]model.RawCategory, error)
	FetchProducts(ctx context.Context) ([]model.RawProduct, error)
	FetchVariations(ctx context.Context, productID int64) ([]model.RawVariation, error)
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Catalog snapshot operations. ReplaceCatalog commits the whole
	// snapshot in one transaction; LoadCatalog returns nil when no sync
	// has ever been recorded.
	ReplaceCatalog(ctx context.Context, snap *model.CatalogSnapshot) error
	LoadCatalog(ctx context.Context) (*model.CatalogSnapshot, error)

	// Roster operations. Rows are kept in order; locks are a set of row ids.
	ReplaceRoster(ctx context.Context, rows []model.Shot, locks map[string]struct{}) error
	LoadRoster(ctx context.Context) ([]model.Shot, map[string]struct{}, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// SyncStats summarizes one completed catalog sync.
type SyncStats struct {
	SyncedAt time.Time
	Products int
	Caches   int
	Themes   int
}
