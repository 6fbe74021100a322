package tui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnamet/lng-1/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lng configuration",
	Long:  `View and manage lng configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration with annotations indicating
where each value came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/lng/config.yaml)
  3. Environment variables (highest precedence)`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("# lng Configuration")
	fmt.Println()
	fmt.Println("## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Printf("  - %s\n", src)
	}
	fmt.Println()

	fmt.Println("## Directories")
	fmt.Printf("  Global config: %s\n", cfg.ConfigDir())
	fmt.Println()

	fmt.Println("## Service Settings")
	fmt.Printf("  base_url:        %s\n", cfg.BaseURL)
	if cfg.RequestTimeout > 0 {
		fmt.Printf("  request_timeout: %ds\n", cfg.RequestTimeout)
	} else {
		fmt.Printf("  request_timeout: (none)\n")
	}
	fmt.Println()

	fmt.Println("## Wizard Settings")
	fmt.Printf("  reveal_interval_ms: %d\n", cfg.RevealIntervalMS)

	return nil
}
