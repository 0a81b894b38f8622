package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karrick/gocalc/internal/settings"
	"github.com/karrick/gocalc/internal/tui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runTUI(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			return err
		}
	}

	s, err := settings.Load(path)
	if err != nil {
		// a broken settings file should not keep the calculator from starting
		logrus.WithError(err).Warn("using default settings")
		s = settings.Default()
	}

	model := tui.New(s.Theme, tui.WithThemeStore(settings.File{Path: path}))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "keypad exited")
	}
	return nil
}
