package config

import "math"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sinewave.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Title   string       `yaml:"title" mapstructure:"title"`
	Domain  DomainConfig `yaml:"domain" mapstructure:"domain"`
	Wave    WaveConfig   `yaml:"wave" mapstructure:"wave"`
	Slider  SliderConfig `yaml:"slider" mapstructure:"slider"`
	Plot    PlotConfig   `yaml:"plot" mapstructure:"plot"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
}

// DomainConfig controls how the x axis is sampled.
type DomainConfig struct {
	// Samples is the number of evenly spaced points, endpoints included.
	Samples int `yaml:"samples" mapstructure:"samples"`

	// Start and End bound the sampled interval, in radians.
	Start float64 `yaml:"start" mapstructure:"start"`
	End   float64 `yaml:"end" mapstructure:"end"`
}

// WaveConfig holds the sine parameters. Phase is only the initial value;
// the slider changes it at runtime.
type WaveConfig struct {
	Amplitude float64 `yaml:"amplitude" mapstructure:"amplitude"`
	Frequency float64 `yaml:"frequency" mapstructure:"frequency"`
	Phase     float64 `yaml:"phase" mapstructure:"phase"`
}

// SliderConfig describes the phase slider.
type SliderConfig struct {
	Title string  `yaml:"title" mapstructure:"title"`
	Start float64 `yaml:"start" mapstructure:"start"`
	End   float64 `yaml:"end" mapstructure:"end"`
	Step  float64 `yaml:"step" mapstructure:"step"`
}

// PlotConfig holds display parameters for the renderer.
type PlotConfig struct {
	// Width and Height are the figure size in pixels. The terminal renderer
	// scales them down to character cells.
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`

	// Tools enables interaction tools: box_zoom, crosshair, pan, reset,
	// save, wheel_zoom.
	Tools []string `yaml:"tools" mapstructure:"tools"`

	XLabel    string  `yaml:"x_label" mapstructure:"x_label"`
	YLabel    string  `yaml:"y_label" mapstructure:"y_label"`
	LineAlpha float64 `yaml:"line_alpha" mapstructure:"line_alpha"`
	LineWidth int     `yaml:"line_width" mapstructure:"line_width"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color: auto, always, never.
	Color string `yaml:"color" mapstructure:"color"`
}

// KnownTools lists the plot tools the renderer understands.
var KnownTools = []string{"box_zoom", "crosshair", "pan", "reset", "save", "wheel_zoom"}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Title:   "A Sine Wave",
		Domain: DomainConfig{
			Samples: 100,
			Start:   0,
			End:     4 * math.Pi,
		},
		Wave: WaveConfig{
			Amplitude: 1,
			Frequency: 1,
			Phase:     0,
		},
		Slider: SliderConfig{
			Title: "Phase",
			Start: 0,
			End:   2 * math.Pi,
			Step:  0.1,
		},
		Plot: PlotConfig{
			Width:     900,
			Height:    400,
			Tools:     append([]string(nil), KnownTools...),
			XLabel:    "x",
			YLabel:    "y",
			LineAlpha: 0.6,
			LineWidth: 2,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
