package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tourboard/internal/schedule"
)

func (a *App) groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List travel groups",
		RunE: func(_ *cobra.Command, _ []string) error {
			groups, err := a.repo.ListGroups(context.Background())
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}

			if len(groups) == 0 {
				fmt.Println("No travel groups yet. Add one with: tourboard groups add <name>")
				return nil
			}

			for _, g := range groups {
				fmt.Printf("  #%d %s\n", g.ID, g.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a travel group",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g := &schedule.Group{Name: args[0]}
			if err := a.repo.CreateGroup(context.Background(), g); err != nil {
				return fmt.Errorf("creating group: %w", err)
			}
			fmt.Printf("Created group #%d: %s\n", g.ID, g.Name)
			return nil
		},
	})

	return cmd
}
