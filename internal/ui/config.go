package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tourboard/internal/config"
	"tourboard/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tourboard config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Timeline.DayStart = promptValue(reader, "Day start", cfg.Timeline.DayStart)
	cfg.Timeline.DayEnd = promptValue(reader, "Day end", cfg.Timeline.DayEnd)
	cfg.Timeline.MinScale = promptFloat(reader, "Min rows per hour", cfg.Timeline.MinScale)
	cfg.Timeline.MaxScale = promptFloat(reader, "Max rows per hour", cfg.Timeline.MaxScale)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("----------------------")
	fmt.Println("[timeline]")
	fmt.Printf("  day_start = %s\n", cfg.Timeline.DayStart)
	fmt.Printf("  day_end   = %s\n", cfg.Timeline.DayEnd)
	fmt.Printf("  min_scale = %g\n", cfg.Timeline.MinScale)
	fmt.Printf("  max_scale = %g\n", cfg.Timeline.MaxScale)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path   = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme     = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	for {
		value := promptValue(reader, label, strconv.FormatFloat(current, 'g', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Printf("  Invalid number %q\n", value)
	}
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
