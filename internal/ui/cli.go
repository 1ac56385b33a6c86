package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tourboard/internal/config"
	"tourboard/internal/schedule"
	"tourboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   schedule.Repository
	config *config.Config
	root   *cobra.Command
	now    func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "tourboard",
		Short: "An interactive timeline board for group excursions",
		Long: `Tourboard coordinates multi-day excursion itineraries across
travel groups. The default command opens the day board, where each
group's activities can be dragged to new times and resized with the
mouse. Double bookings at the same place and time are highlighted for
review, never resolved automatically.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.groupsCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.demoCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tourboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
