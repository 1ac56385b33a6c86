package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
)

func (a *App) conflictsCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List double bookings in a date range",
		Long: `List every entry that shares its exact start time and location
with another group's entry. Conflicts are reported for human review;
tourboard never reschedules anything on its own.`,
		Example: `  tourboard conflicts
  tourboard conflicts --start=2026-07-14 --end=2026-07-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			ctx := context.Background()
			entries, err := a.repo.ListEntries(ctx, dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			groups, err := a.repo.ListGroups(ctx)
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}
			ix := schedule.BuildIndex(entries, groups)

			found := 0
			for _, e := range entries {
				conflicts := ix.EntryConflicts(e)
				if len(conflicts) == 0 {
					continue
				}
				found++
				fmt.Printf("%s %s %s  #%d %s [%s]  %s\n",
					e.Date.Format("2006-01-02"), e.Start, e.Location,
					e.ID, e.Description, ix.GroupName(e.GroupID),
					formatConflict("also "+schedule.JoinConflictNames(ix.ConflictNames(conflicts))))
			}

			if found == 0 {
				fmt.Println(formatStats("No double bookings found."))
			} else {
				fmt.Printf("\n%s\n", formatConflict(fmt.Sprintf("%d double booked entries", found)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}
