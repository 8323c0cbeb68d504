// Package export renders the roster as a tabular projection for external
// consumption.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/blahpunk/shotlist/internal/model"
)

// csvHeader matches the column order of the exported projection.
var csvHeader = []string{"#", "Type", "Name (Garment/Theme/Cache)", "Color", "Locked"}

// WriteRoster writes the roster in its current order as CSV: 1-based row
// number, shot type, the most specific display name, color, and a Yes/empty
// lock flag.
func WriteRoster(w io.Writer, rows []model.Shot, locks map[string]struct{}) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range rows {
		row := &rows[i]
		locked := ""
		if _, ok := locks[row.ID]; ok {
			locked = "Yes"
		}
		record := []string{
			fmt.Sprintf("%d", i+1),
			string(row.Type),
			row.DisplayName(),
			row.Color,
			locked,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
