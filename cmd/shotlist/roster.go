package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blahpunk/shotlist/internal/cli"
	"github.com/blahpunk/shotlist/internal/roster"
	"github.com/blahpunk/shotlist/internal/service"
)

func rosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and rework the current shot roster",
		Long:  `List the current roster, toggle row locks, re-roll the unlocked rows, or clear them.`,
	}

	cmd.AddCommand(rosterListCmd())
	cmd.AddCommand(rosterLockCmd())
	cmd.AddCommand(rosterRerollCmd())
	cmd.AddCommand(rosterClearCmd())

	return cmd
}

func rosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roster rows",
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
			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("Roster is empty. Use 'shotlist generate' to build one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				_ = w.Flush()
			}()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("#"),
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Color"),
				cli.HeaderStyle.Render("Cache"),
				cli.HeaderStyle.Render("Theme"),
				cli.HeaderStyle.Render("Locked"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 12), strings.Repeat("-", 22),
				strings.Repeat("-", 24), strings.Repeat("-", 10), strings.Repeat("-", 12),
				strings.Repeat("-", 12), strings.Repeat("-", 6))

			for i := range rows {
				row := &rows[i]
				locked := ""
				if _, ok := locks[row.ID]; ok {
					locked = cli.LockStyle.Render(cli.LockIcon)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					i+1, row.ID, row.Type, row.DisplayName(), row.Color, row.Cache, row.Theme, locked)
			}
			return nil
		},
	}
}

func rosterLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <id>",
		Short: "Toggle a row's lock",
		Long: `Toggle the lock on a roster row by id. Locked rows keep their
position through re-rolls and survive 'roster clear'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRoster(cmd.Context(), func(r *roster.Roster) string {
				r.ToggleLock(args[0])
				if r.Locked(args[0]) {
					return fmt.Sprintf("Locked %s.", args[0])
				}
				return fmt.Sprintf("Unlocked %s.", args[0])
			})
		},
	}
}

func rosterRerollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reroll",
		Short: "Shuffle the unlocked rows in place",
		Long:  `Randomize the order of every unlocked row. Locked rows keep their exact positions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoster(cmd.Context(), func(r *roster.Roster) string {
				r.Reroll()
				return "Re-rolled unlocked shots."
			})
		},
	}
}

func rosterClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all unlocked rows",
		Long:  `Drop every unlocked row from the roster. Locked rows survive, in order, and stay locked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoster(cmd.Context(), func(r *roster.Roster) string {
				r.ClearUnlocked()
				return "Cleared all unlocked shots."
			})
		},
	}
}

// withRoster loads the persisted roster, applies op, and persists the
// result as one unit.
func withRoster(ctx context.Context, op func(*roster.Roster) string) error {
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	rows, locks, err := store.LoadRoster(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	r := roster.FromState(rows, locks)
	msg := op(r)

	if err := store.ReplaceRoster(ctx, r.Rows, r.Locks); err != nil {
		return fmt.Errorf("failed to store roster: %w", err)
	}

	fmt.Println(cli.FormatSuccess(msg))
	return nil
}

func closeStore(store service.Storage) {
	_ = store.Close()
}
