package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blahpunk/shotlist/internal/catalog"
	"github.com/blahpunk/shotlist/internal/cli"
	"github.com/blahpunk/shotlist/internal/common"
	"github.com/blahpunk/shotlist/internal/planner"
	"github.com/blahpunk/shotlist/internal/roster"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh shot roster",
		Long: `Build a new randomized roster from the synced catalog: two stills per
product color, 5 reels + 3 worlds + 1 main art per theme, and 3 art pieces
per cache. The previous roster and every lock are discarded. If the catalog
has never been synced, a sync runs first.`,
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	snap, err := store.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if snap == nil || len(snap.Products) == 0 {
		source, err := newCatalogSource(nil)
		if err != nil {
			return common.NewUserError("store not configured; set woo.url, woo.key and woo.secret, then run 'shotlist sync'", err)
		}
		slog.Info("Catalog not synced yet, syncing first")
		if _, err := catalog.NewSyncer(source, store).Sync(ctx); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		snap, err = store.LoadCatalog(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		if snap == nil {
			return common.ErrNotSynced
		}
	}

	r := roster.New()
	r.Replace(planner.Generate(snap))

	if err := store.ReplaceRoster(ctx, r.Rows, r.Locks); err != nil {
		return fmt.Errorf("failed to store roster: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Generated %d shots.", r.Len())))
	return nil
}
