package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blahpunk/shotlist/internal/cli"
	"github.com/blahpunk/shotlist/internal/export"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster as CSV",
		Long:  `Write the current roster, in order, to a CSV file with row numbers, types, names, colors, and lock flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			rows, locks, err := store.LoadRoster(ctx)
			if err != nil {
				return fmt.Errorf("failed to load roster: %w", err)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() {
				_ = f.Close()
			}()

			if err := export.WriteRoster(f, rows, locks); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d shots to %s.", len(rows), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "shotlist_posts.csv", "output CSV file")

	return cmd
}
