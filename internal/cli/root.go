package cli

import (
	"errors"
	"fmt"

	"github.com/artpar/auweb/internal/draft"
	"github.com/artpar/auweb/internal/draft/sqlite"
	"github.com/artpar/auweb/internal/tui/views"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auweb",
		Short:   "auweb - a terminal HTTP API client",
		Long:    "auweb sends HTTP requests and shows the response with JSON, XML and HTML bodies beautified and highlighted.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default $AUWEB_CONFIG or <user config dir>/auweb/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(NewSendCommand())
	cmd.AddCommand(NewBeautifyCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}

// runTUI starts the TUI application.
func runTUI(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	store, err := sqlite.New(s.config.DraftPath())
	if err != nil {
		return err
	}
	defer store.Close()

	// stderr belongs to the UI while it runs.
	logFile, err := tea.LogToFile(s.config.LogPath(), "auweb")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	s.logTo(logFile)

	view := views.NewMainView(views.Options{
		App:         s.newApp(),
		Store:       store,
		Highlighter: s.highlighter(),
		Initial: draft.Draft{
			URL:     s.config.URL,
			Method:  s.config.DefaultMethod(),
			Headers: s.config.Headers,
			Body:    s.config.Body,
		},
	})

	p := tea.NewProgram(view, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
