package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsel/internal/catalog"
	"github.com/nikbrunner/tagsel/internal/config"
	"github.com/nikbrunner/tagsel/internal/match"
	"github.com/nikbrunner/tagsel/internal/output"
	"github.com/nikbrunner/tagsel/internal/tui"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
	"github.com/nikbrunner/tagsel/internal/tui/tagselect"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runSelect runs the interactive selector and prints the submitted tags.
func runSelect(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := s.config

	logger, closeLog, err := newLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return err
	}

	lc := layout.DefaultConfig()
	lc.Field.Width = cfg.Width
	lc.Dropdown.MaxVisible = cfg.MaxVisible
	lc.Input.Placeholder = cfg.Placeholder

	app := tui.NewApp(tui.AppParams{
		Selector: tagselect.Params{
			Options: cat.Options(),
			Matcher: match.For(s.mode),
			Layout:  &lc,
		},
		Title:  cfg.Title,
		Logger: &logger,
	})

	logger.Info().
		Int("options", cat.Len()).
		Str("match", string(s.mode)).
		Str("format", string(s.format)).
		Msg("starting selector")

	// stdout carries the result, so the UI draws on stderr
	p := tea.NewProgram(app, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run selector: %w", err)
	}

	finalApp := finalModel.(tui.App)
	if !finalApp.Submitted() {
		return nil
	}
	return output.Write(cmd.OutOrStdout(), finalApp.Selected(), s.format)
}

// settings is the validated config with its enumerated fields parsed.
type settings struct {
	config *config.Config
	mode   match.Mode
	format output.Format
}

// loadSettings loads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (settings, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultConfigFilePath()
		if err != nil {
			return settings{}, fmt.Errorf("config path: %w", err)
		}
		path = p
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if flags.Changed("format") {
		cfg.Output = formatName
	}
	if flags.Changed("match") {
		cfg.MatchMode = matchName
	}
	if flags.Changed("title") {
		cfg.Title = title
	}

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	mode, err := match.ParseMode(cfg.MatchMode)
	if err != nil {
		return settings{}, err
	}
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return settings{}, err
	}

	return settings{config: cfg, mode: mode, format: format}, nil
}

// newLogger returns a debug logger writing JSON lines to path, or a
// disabled logger when path is empty. The terminal belongs to the UI.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = f.Close() }, nil
}
