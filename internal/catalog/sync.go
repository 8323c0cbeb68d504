package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blahpunk/shotlist/internal/model"
	"github.com/blahpunk/shotlist/internal/service"
)

// Syncer pulls the full catalog from the store, derives the cache/theme
// hierarchy and product assignments, and commits the result as one
// snapshot. Any fetch failure aborts the sync before the commit, so the
// previously stored snapshot stays authoritative.
type Syncer struct {
	source service.CatalogSource
	store  service.Storage
	logger *slog.Logger
}

// NewSyncer creates a syncer for the given source and storage.
func NewSyncer(source service.CatalogSource, store service.Storage) *Syncer {
	return &Syncer{
		source: source,
		store:  store,
		logger: slog.Default().With("component", "syncer"),
	}
}

// Sync runs one full catalog sync and returns its summary.
func (s *Syncer) Sync(ctx context.Context) (service.SyncStats, error) {
	s.logger.Info("Starting catalog sync")

	cats, err := s.source.FetchCategories(ctx)
	if err != nil {
		return service.SyncStats{}, fmt.Errorf("failed to fetch categories: %w", err)
	}
	s.logger.Debug("Fetched categories", "count", len(cats))

	rawProducts, err := s.source.FetchProducts(ctx)
	if err != nil {
		return service.SyncStats{}, fmt.Errorf("failed to fetch products: %w", err)
	}
	s.logger.Debug("Fetched products", "count", len(rawProducts))

	normalizer := NewNormalizer(s.source)
	products := make([]model.Product, 0, len(rawProducts))
	for _, raw := range rawProducts {
		p, err := normalizer.Normalize(ctx, raw)
		if err != nil {
			return service.SyncStats{}, err
		}
		products = append(products, p)
	}

	caches, themes := ResolveHierarchy(cats)
	Assign(products, caches, themes)

	snap := &model.CatalogSnapshot{
		SyncedAt: time.Now().UTC(),
		Products: products,
		Caches:   caches,
		Themes:   themes,
	}
	if err := s.store.ReplaceCatalog(ctx, snap); err != nil {
		return service.SyncStats{}, fmt.Errorf("failed to store catalog snapshot: %w", err)
	}

	stats := service.SyncStats{
		SyncedAt: snap.SyncedAt,
		Products: len(products),
		Caches:   len(caches),
		Themes:   len(themes),
	}
	s.logger.Info("Catalog sync complete",
		"products", stats.Products,
		"caches", stats.Caches,
		"themes", stats.Themes)
	return stats, nil
}
