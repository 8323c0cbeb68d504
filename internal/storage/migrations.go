package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS products (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					type TEXT NOT NULL DEFAULT '',
					category_ids TEXT NOT NULL DEFAULT '[]',
					category_names TEXT NOT NULL DEFAULT '[]',
					colors TEXT NOT NULL DEFAULT '[]',
					theme_id INTEGER NOT NULL DEFAULT 0,
					theme_name TEXT NOT NULL DEFAULT '',
					cache_id INTEGER NOT NULL DEFAULT 0,
					cache_name TEXT NOT NULL DEFAULT '',
					position INTEGER NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS caches (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					position INTEGER NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS themes (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					cache_id INTEGER NOT NULL,
					cache_name TEXT NOT NULL,
					position INTEGER NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS shots (
					id TEXT PRIMARY KEY,
					type TEXT NOT NULL,
					garment TEXT NOT NULL DEFAULT '',
					color TEXT NOT NULL DEFAULT '',
					note TEXT NOT NULL DEFAULT '',
					cache_name TEXT NOT NULL DEFAULT '',
					theme_name TEXT NOT NULL DEFAULT '',
					locked INTEGER NOT NULL DEFAULT 0,
					position INTEGER NOT NULL
				)`,
				`CREATE INDEX idx_shots_position ON shots(position)`,

				`CREATE TABLE IF NOT EXISTS sync_meta (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					synced_at DATETIME NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies any pending schema migrations in order.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		err := s.withTx(ctx, func(tx *sql.Tx) error {
			if err := m.Up(tx); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		slog.Debug("Applied migration", "version", m.Version, "description", m.Description)
	}
	return nil
}
