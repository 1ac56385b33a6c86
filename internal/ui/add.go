package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tourboard/internal/schedule"
)

func (a *App) addCmd() *cobra.Command {
	var (
		groupID  int64
		date     string
		start    string
		end      string
		location string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add an itinerary entry",
		Long: `Add an entry to a group's itinerary.

Times are optional: an entry without them appears as unscheduled until
a window is assigned on the board.

Example:
  tourboard add "City walking tour" --group=1 --date=2026-07-14 --start=09:00 --end=10:30 --location="Old Town"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := schedule.NewEntry(groupID, args[0], date, start, end, location)
			if err != nil {
				return err
			}
			e.Notes = notes

			ctx := context.Background()
			if err := a.repo.CreateEntry(ctx, e); err != nil {
				return fmt.Errorf("creating entry: %w", err)
			}

			window := "unscheduled"
			if e.IsScheduled() {
				window = e.Start + "-" + e.End
			}
			fmt.Printf("Created entry #%d: %s [group %d] %s %s\n",
				e.ID, e.Label(), e.GroupID, e.Date.Format("2006-01-02"), window)
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "group", 0, "Group id (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, up to 24:00)")
	cmd.Flags().StringVar(&location, "location", "", "Place the activity happens at")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	_ = cmd.MarkFlagRequired("group")

	return cmd
}
