package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
)

func (a *App) dayCmd() *cobra.Command {
	var groupID int64

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Print the itinerary for one day across all groups",
		Long: `Print one day's composed itinerary for every group: scheduled
activities in time order, meals and lodging from the daily card, and
unscheduled entries at the end. Double bookings are annotated.

Accepts an absolute date or a relative one (today, tomorrow, friday).
Defaults to today.`,
		Example: `  tourboard day
  tourboard day 2026-07-14
  tourboard day friday`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			date, err := dateutil.ParseRelativeDate(input, a.now())
			if err != nil {
				return err
			}

			ctx := context.Background()
			groups, err := a.repo.ListGroups(ctx)
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}
			entries, err := a.repo.ListEntries(ctx, date, date)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			ix := schedule.BuildIndex(entries, groups)

			cards := map[int64]*schedule.DailyCard{}
			for _, g := range groups {
				card, err := a.repo.GetDailyCard(ctx, g.ID, date)
				if err != nil {
					return fmt.Errorf("loading daily card: %w", err)
				}
				if card != nil {
					cards[g.ID] = card
				}
			}

			var report string
			if groupID > 0 {
				report = schedule.FormatDayReport(ix, date, cards, groupID)
			} else {
				report = schedule.FormatDayReport(ix, date, cards)
			}

			rule := termWidth()
			if rule > 72 {
				rule = 72
			}
			fmt.Println(formatMuted(strings.Repeat("-", rule)))
			fmt.Print(report)
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "group", 0, "Only this group (default: all groups)")

	return cmd
}
