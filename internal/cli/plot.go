package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sinewave/internal/config"
	"github.com/rileyhilliard/sinewave/internal/document"
	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/rileyhilliard/sinewave/internal/plot"
	"github.com/rileyhilliard/sinewave/internal/ui"
	"github.com/rileyhilliard/sinewave/internal/wave"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Terminal detection, swappable in tests.
var (
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// PlotOptions holds options for the plot command.
type PlotOptions struct {
	Phase    float64 // Initial phase, used when PhaseSet
	PhaseSet bool
	Ask      bool // Prompt for the initial phase
	Logger   logger.Logger
}

func commandLogger() logger.Logger {
	return logger.NewEnvLogger("sinewave")
}

func runPlot(cmd *cobra.Command) error {
	log := commandLogger()
	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}
	return Plot(cfg, PlotOptions{
		Phase:    plotPhaseFlag,
		PhaseSet: cmd.Flags().Changed("phase"),
		Ask:      plotAskFlag,
		Logger:   log,
	}, cmd.OutOrStdout())
}

// Plot runs the interactive plot, or renders it once to out when stdout is
// not a terminal.
func Plot(cfg *config.Config, opts PlotOptions, out io.Writer) error {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	docOpts := documentOptions(cfg, opts.Logger)
	if opts.PhaseSet {
		docOpts.Params.Phase = opts.Phase
	}

	if opts.Ask {
		if stdinIsTerminal() {
			phase, err := askPhase(cfg.Slider, docOpts.Params.Phase)
			if err != nil {
				return err
			}
			docOpts.Params.Phase = phase
		} else {
			ui.PrintWarning(fmt.Sprintf("--ask needs an interactive terminal, using phase %.2f", docOpts.Params.Phase))
		}
	}

	doc, err := document.New(docOpts)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't build the plot from this config",
			"Check the slider section of "+config.ConfigFileName)
	}
	if got := doc.Slider().Value(); got != docOpts.Params.Phase {
		opts.Logger.Warn("phase %g clamped to %g", docOpts.Params.Phase, got)
	}
	fig := plot.FigureFromConfig(doc.Title(), cfg.Plot)

	if !stdoutIsTerminal() {
		if _, err := io.WriteString(out, plot.RenderStatic(doc, fig, 0)); err != nil {
			return errors.Wrap(err, "Couldn't write the plot")
		}
		return nil
	}
	return runProgram(doc, fig, opts.Logger, out)
}

// runProgram hosts the plot model in a full-screen Bubble Tea program and
// prints any saved frames once it exits.
func runProgram(doc *document.Document, fig plot.Figure, log logger.Logger, out io.Writer) error {
	model := plot.NewModel(doc, fig, log)
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if fig.Has(plot.ToolWheelZoom) || fig.Has(plot.ToolBoxZoom) || fig.Has(plot.ToolCrosshair) {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, progOpts...)
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The plot stopped unexpectedly",
			"Try again with --no-color, or pipe the output for a static render")
	}

	if m, ok := final.(plot.Model); ok {
		for _, frame := range m.Saved() {
			fmt.Fprintln(out, frame)
		}
	}
	return nil
}

// documentOptions maps the config onto document options.
func documentOptions(cfg *config.Config, log logger.Logger) document.Options {
	return document.Options{
		Title:   cfg.Title,
		Samples: cfg.Domain.Samples,
		Start:   cfg.Domain.Start,
		End:     cfg.Domain.End,
		Params: wave.Params{
			Amplitude: cfg.Wave.Amplitude,
			Phase:     cfg.Wave.Phase,
			Frequency: cfg.Wave.Frequency,
		},
		Slider: document.SliderOptions{
			Title: cfg.Slider.Title,
			Start: cfg.Slider.Start,
			End:   cfg.Slider.End,
			Step:  cfg.Slider.Step,
		},
		Logger: log,
	}
}

// askPhase prompts for the initial phase within the slider bounds.
func askPhase(s config.SliderConfig, initial float64) (float64, error) {
	value := strconv.FormatFloat(initial, 'f', 2, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s (%.2f to %.2f)", s.Title, s.Start, s.End)).
				Value(&value).
				Validate(func(in string) error {
					_, err := parsePhase(in, s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Pass the phase with --phase instead")
	}
	return parsePhase(value, s)
}

// parsePhase parses a phase typed by the user and checks it against the
// slider bounds.
func parsePhase(in string, s config.SliderConfig) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("enter a number")
	}
	if v < s.Start || v > s.End {
		return 0, fmt.Errorf("must be between %.2f and %.2f", s.Start, s.End)
	}
	return v, nil
}
