package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tourboard/internal/dateutil"
)

// seeder is implemented by stores that can populate sample data.
type seeder interface {
	Seed(ctx context.Context, firstDay time.Time) error
}

func (a *App) demoCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed the database with a sample excursion",
		Long: `Populate an empty database with three travel groups over three
days, including one deliberate double booking, then print the first
day. Fails if the database already has groups.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, ok := a.repo.(seeder)
			if !ok {
				return fmt.Errorf("this storage backend cannot be seeded")
			}

			firstDay, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			if err := s.Seed(context.Background(), firstDay); err != nil {
				return fmt.Errorf("seeding: %w", err)
			}

			fmt.Println(formatStats(fmt.Sprintf(
				"Seeded 3 groups starting %s. Open the board with: tourboard",
				firstDay.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "First excursion day (YYYY-MM-DD, default: today)")

	return cmd
}
