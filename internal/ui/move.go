package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tourboard/internal/schedule"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "move [entry id]",
		Short: "Move an entry to a new time window",
		Long: `Assign a new start and end time to an existing entry.

This is the scripted equivalent of dragging the entry on the board: the
same validation applies, and a rejected window leaves the stored entry
untouched.

Example:
  tourboard move 12 --start=10:00 --end=11:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			ctx := context.Background()
			update := schedule.TimeUpdate{ID: id, Start: start, End: end}
			if err := a.repo.UpdateEntryTimes(ctx, update); err != nil {
				return fmt.Errorf("moving entry: %w", err)
			}

			e, err := a.repo.GetEntry(ctx, id)
			if err != nil || e == nil {
				fmt.Printf("Moved entry #%d to %s-%s\n", id, start, end)
				return nil
			}
			fmt.Printf("Moved entry #%d: %s %s %s-%s\n",
				e.ID, e.Label(), e.Date.Format("2006-01-02"), e.Start, e.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, up to 24:00, required)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
