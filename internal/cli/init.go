package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sinewave/internal/config"
	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/rileyhilliard/sinewave/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file, defaults to ./.sinewave.yaml
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
}

// Init writes a default .sinewave.yaml configuration file.
func Init(opts InitOptions, w io.Writer) error {
	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+configPath,
			"Check that the directory exists and is writable")
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	return nil
}
