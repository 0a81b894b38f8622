package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "gocalc",
	Short: "Keypad calculator for the terminal",
	Long: `gocalc evaluates arithmetic expressions with + - * / and parentheses.

Run without arguments for the interactive keypad, or use 'gocalc eval' to
evaluate expressions from arguments or standard input.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	// Assigned here rather than in the literal: setupLogging refers to rootCmd.
	rootCmd.PersistentPreRunE = setupLogging
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: <user config dir>/gocalc/settings.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging points logrus at --log-file. Without one, the keypad discards logs so they do not
// draw over the screen, while eval logs to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	logrus.SetLevel(level)

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrapf(err, "cannot open log file %s", logFile)
		}
		logrus.SetOutput(f)
	case cmd == rootCmd:
		logrus.SetOutput(io.Discard)
	default:
		logrus.SetOutput(os.Stderr)
	}
	return nil
}
