package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/blahpunk/shotlist/internal/catalog"
	"github.com/blahpunk/shotlist/internal/cli"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync the catalog from the store",
		Long: `Pull every category and published product from the configured
WooCommerce store, rebuild the Cache → Theme hierarchy, and assign each
product to its theme and cache. A failed sync leaves the previous catalog
snapshot untouched.`,
		RunE: runSync,
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	bar := newFetchBar()
	source, err := newCatalogSource(func(items int) {
		if err := bar.Add(items); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	})
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Syncing catalog from store"))

	stats, err := catalog.NewSyncer(source, store).Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	_ = bar.Finish()

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Synced: %d products, %d caches, %d themes.",
		stats.Products, stats.Caches, stats.Themes)))
	return nil
}

// newFetchBar builds an indeterminate spinner that advances as catalog
// pages arrive.
func newFetchBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Fetching catalog...[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
