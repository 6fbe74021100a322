package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/johnamet/lng-1/internal/config"
	"github.com/johnamet/lng-1/internal/debug"
	"github.com/johnamet/lng-1/internal/ingress"
)

var baseURLFlag string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the intake wizard",
	Long: `Start the lesson-notes intake wizard.

The wizard walks through five steps:
1. Lesson        - subject, class level, topic
2. Schedule      - week ending, duration, days, week number
3. Class roster  - class names and sizes
4. Contact       - phone number and optional email
5. Review        - optional instructions, then submit

Each step must validate before the wizard advances. Submission posts the
collected data to the generation service; the outcome is shown as a
dismissible notification.

Controls:
  enter       - next field / advance step / submit
  tab         - cycle fields
  ctrl+p      - previous step
  ctrl+a/x    - add / remove a roster row (step 3)
  esc, ctrl+c - quit`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Generation service base URL (overrides LNG_BASE_URL)")
}

func runStart(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	debug.Logf("start: base_url=%s reveal_interval=%s", cfg.BaseURL, cfg.RevealInterval())

	client := ingress.NewClient(cfg.BaseURL, cfg.RequestTimeoutDuration())
	m := NewModel(client, cfg.RevealInterval())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
