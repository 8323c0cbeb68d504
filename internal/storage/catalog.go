package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blahpunk/shotlist/internal/model"
)

// ReplaceCatalog commits a full catalog snapshot in a single transaction.
// A failure anywhere leaves the previously committed snapshot intact.
func (s *SQLiteStorage) ReplaceCatalog(ctx context.Context, snap *model.CatalogSnapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"products", "caches", "themes"} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for i, p := range snap.Products {
			catIDs, err := json.Marshal(p.CategoryIDs)
			if err != nil {
				return fmt.Errorf("failed to encode category ids for product %d: %w", p.ID, err)
			}
			catNames, err := json.Marshal(p.CategoryNames)
			if err != nil {
				return fmt.Errorf("failed to encode category names for product %d: %w", p.ID, err)
			}
			colors, err := json.Marshal(p.Colors)
			if err != nil {
				return fmt.Errorf("failed to encode colors for product %d: %w", p.ID, err)
			}

			_, err = tx.Exec(`INSERT INTO products
				(id, name, type, category_ids, category_names, colors,
				 theme_id, theme_name, cache_id, cache_name, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.Type, string(catIDs), string(catNames), string(colors),
				p.ThemeID, p.ThemeName, p.CacheID, p.CacheName, i)
			if err != nil {
				return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
			}
		}

		for i, c := range snap.Caches {
			if _, err := tx.Exec(`INSERT INTO caches (id, name, position) VALUES (?, ?, ?)`,
				c.ID, c.Name, i); err != nil {
				return fmt.Errorf("failed to insert cache %d: %w", c.ID, err)
			}
		}

		for i, t := range snap.Themes {
			if _, err := tx.Exec(`INSERT INTO themes (id, name, cache_id, cache_name, position) VALUES (?, ?, ?, ?, ?)`,
				t.ID, t.Name, t.CacheID, t.CacheName, i); err != nil {
				return fmt.Errorf("failed to insert theme %d: %w", t.ID, err)
			}
		}

		if _, err := tx.Exec(`INSERT INTO sync_meta (id, synced_at) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET synced_at = excluded.synced_at`,
			snap.SyncedAt.UTC()); err != nil {
			return fmt.Errorf("failed to record sync time: %w", err)
		}
		return nil
	})
}

// LoadCatalog reads the last committed snapshot. It returns nil when no
// sync has ever been recorded.
func (s *SQLiteStorage) LoadCatalog(ctx context.Context) (*model.CatalogSnapshot, error) {
	var syncedAt time.Time
	err := s.db.QueryRowContext(ctx, `SELECT synced_at FROM sync_meta WHERE id = 1`).Scan(&syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sync time: %w", err)
	}

	snap := &model.CatalogSnapshot{SyncedAt: syncedAt}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, category_ids, category_names, colors,
		theme_id, theme_name, cache_id, cache_name
		FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var p model.Product
		var catIDs, catNames, colors string
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &catIDs, &catNames, &colors,
			&p.ThemeID, &p.ThemeName, &p.CacheID, &p.CacheName); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if err := json.Unmarshal([]byte(catIDs), &p.CategoryIDs); err != nil {
			return nil, fmt.Errorf("failed to decode category ids for product %d: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(catNames), &p.CategoryNames); err != nil {
			return nil, fmt.Errorf("failed to decode category names for product %d: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
			return nil, fmt.Errorf("failed to decode colors for product %d: %w", p.ID, err)
		}
		snap.Products = append(snap.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	cacheRows, err := s.db.QueryContext(ctx, `SELECT id, name FROM caches ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query caches: %w", err)
	}
	defer func() {
		_ = cacheRows.Close()
	}()
	for cacheRows.Next() {
		var c model.Cache
		if err := cacheRows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan cache: %w", err)
		}
		snap.Caches = append(snap.Caches, c)
	}
	if err := cacheRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate caches: %w", err)
	}

	themeRows, err := s.db.QueryContext(ctx, `SELECT id, name, cache_id, cache_name FROM themes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer func() {
		_ = themeRows.Close()
	}()
	for themeRows.Next() {
		var t model.Theme
		if err := themeRows.Scan(&t.ID, &t.Name, &t.CacheID, &t.CacheName); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		snap.Themes = append(snap.Themes, t)
	}
	if err := themeRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate themes: %w", err)
	}

	return snap, nil
}
