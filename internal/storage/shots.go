package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blahpunk/shotlist/internal/model"
)

// ReplaceRoster rewrites the whole roster (rows in order plus lock flags)
// in one transaction.
func (s *SQLiteStorage) ReplaceRoster(ctx context.Context, rows []model.Shot, locks map[string]struct{}) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM shots`); err != nil {
			return fmt.Errorf("failed to clear shots: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO shots
			(id, type, garment, color, note, cache_name, theme_name, locked, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare shot insert: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for i, row := range rows {
			locked := 0
			if _, ok := locks[row.ID]; ok {
				locked = 1
			}
			if _, err := stmt.Exec(row.ID, string(row.Type), row.Garment, row.Color,
				row.Note, row.Cache, row.Theme, locked, i); err != nil {
				return fmt.Errorf("failed to insert shot %s: %w", row.ID, err)
			}
		}
		return nil
	})
}

// LoadRoster reads the roster rows in order along with the lock set.
func (s *SQLiteStorage) LoadRoster(ctx context.Context) ([]model.Shot, map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type, garment, color, note, cache_name, theme_name, locked
		FROM shots ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query shots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var shots []model.Shot
	locks := make(map[string]struct{})
	for rows.Next() {
		var shot model.Shot
		var shotType string
		var locked int
		if err := rows.Scan(&shot.ID, &shotType, &shot.Garment, &shot.Color,
			&shot.Note, &shot.Cache, &shot.Theme, &locked); err != nil {
			return nil, nil, fmt.Errorf("failed to scan shot: %w", err)
		}
		shot.Type = model.ShotType(shotType)
		if locked != 0 {
			locks[shot.ID] = struct{}{}
		}
		shots = append(shots, shot)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate shots: %w", err)
	}
	return shots, locks, nil
}
