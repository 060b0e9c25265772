package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/sinewave/internal/config"
	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/rileyhilliard/sinewave/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "sinewave",
	Short: "Interactive sine wave plot in the terminal",
	Long: `Plot y = A·sin(ωx + φ) over a fixed domain and drag the phase with a slider.

Running sinewave with no subcommand opens the interactive plot. When stdout is
not a terminal the plot is rendered once as plain text.

Examples:
  sinewave
  sinewave --phase 1.5
  sinewave snapshot --format csv > wave.csv
  sinewave init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err in the structured error format, converting
// cobra's plain errors first.
func formatError(err error) string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		switch {
		case isUnknownCommandError(err) && extractUnknownCommand(err) != "":
			e = errors.New(errors.ErrInput,
				fmt.Sprintf("Unknown command: %s", extractUnknownCommand(err)),
				"Run 'sinewave --help' to see available commands")
		default:
			e = errors.WrapWithCode(err, errors.ErrInput, "Invalid usage",
				"Run 'sinewave --help' for usage")
		}
	}
	return e.Error()
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "sinewave"` error.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig loads the config selected by --config (or discovered) and
// applies its output settings.
func loadConfig(log logger.Logger) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		log.Debug("no config file found, using defaults")
	} else {
		log.Debug("loaded config from %s", path)
	}

	if noColor {
		ui.DisableColors()
	} else {
		ui.ApplyColorMode(cfg.Output.Color)
	}
	return cfg, nil
}
