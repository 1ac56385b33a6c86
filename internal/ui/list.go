package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List itinerary entries in a date range",
		Long: `List entries for all groups within a date range.

If no dates are specified, lists today's entries.
If only --start is specified, lists that single day.`,
		Example: `  tourboard list
  tourboard list --start=2026-07-14
  tourboard list --start=2026-07-14 --end=2026-07-20`,
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

			if len(entries) == 0 {
				fmt.Println("No entries found in the specified date range.")
				return nil
			}

			groups, err := a.repo.ListGroups(ctx)
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}
			ix := schedule.BuildIndex(entries, groups)

			var currentDate string
			for _, e := range entries {
				date := e.Date.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatHeader(date))
					currentDate = date
				}

				window := formatMuted("--:--~--:--")
				if e.IsScheduled() {
					window = formatActivity(e.Start + "-" + e.End)
				}
				line := fmt.Sprintf("  #%d [%s] %s %s",
					e.ID, ix.GroupName(e.GroupID), window, e.Label())
				if conflicts := ix.EntryConflicts(e); len(conflicts) != 0 {
					line += formatConflict(fmt.Sprintf("  !! also %s",
						schedule.JoinConflictNames(ix.ConflictNames(conflicts))))
				}
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}
