package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/rileyhilliard/sinewave/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sinewave only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sinewave or lower the version field.")
	}

	if err := validateDomain(cfg.Domain); err != nil {
		return err
	}
	if err := validateWave(cfg.Wave); err != nil {
		return err
	}
	if err := validateSlider(cfg.Slider); err != nil {
		return err
	}
	if err := validatePlot(cfg.Plot); err != nil {
		return err
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a valid output.color", cfg.Output.Color),
			"Use one of: auto, always, never")
	}

	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateDomain(d DomainConfig) error {
	if d.Samples < 2 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("domain.samples is %d, need at least 2 to draw a line", d.Samples),
			"Set domain.samples to 2 or more (default 100).")
	}
	if !finite(d.Start, d.End) || !(d.End > d.Start) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("domain [%g, %g] is empty", d.Start, d.End),
			"domain.end must be greater than domain.start.")
	}
	return nil
}

func validateWave(w WaveConfig) error {
	if !finite(w.Amplitude, w.Frequency, w.Phase) {
		return errors.New(errors.ErrConfig,
			"wave parameters must be finite numbers",
			"Check wave.amplitude, wave.frequency and wave.phase.")
	}
	return nil
}

func validateSlider(s SliderConfig) error {
	if !finite(s.Start, s.End, s.Step) || !(s.End > s.Start) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("slider range [%g, %g] is empty", s.Start, s.End),
			"slider.end must be greater than slider.start.")
	}
	if s.Step <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("slider.step is %g", s.Step),
			"Use a positive step, e.g. 0.1.")
	}
	return nil
}

func validatePlot(p PlotConfig) error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("plot size %dx%d is not drawable", p.Width, p.Height),
			"plot.width and plot.height must be positive.")
	}
	if !finite(p.LineAlpha) || p.LineAlpha < 0 || p.LineAlpha > 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("plot.line_alpha is %g", p.LineAlpha),
			"Use a value between 0 and 1.")
	}
	if p.LineWidth < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("plot.line_width is %d", p.LineWidth),
			"Use a line width of 1 or more.")
	}
	for _, tool := range p.Tools {
		if !isKnownTool(tool) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown plot tool '%s'", tool),
				"Available tools: "+strings.Join(KnownTools, ", "))
		}
	}
	return nil
}

func isKnownTool(name string) bool {
	for _, t := range KnownTools {
		if t == name {
			return true
		}
	}
	return false
}
