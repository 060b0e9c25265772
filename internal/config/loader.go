package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sinewave.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/sinewave"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sinewave init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sinewave.yaml in the current directory
// 3. ~/.config/sinewave/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads and validates config from the found path, or returns
// defaults if no file exists. The returned path is empty for defaults.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	if err := Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// setDefaults registers defaults with viper so keys missing from the file
// keep their default values after Unmarshal.
func setDefaults(v *viper.Viper, def *Config) {
	v.SetDefault("version", def.Version)
	v.SetDefault("title", def.Title)
	v.SetDefault("domain.samples", def.Domain.Samples)
	v.SetDefault("domain.start", def.Domain.Start)
	v.SetDefault("domain.end", def.Domain.End)
	v.SetDefault("wave.amplitude", def.Wave.Amplitude)
	v.SetDefault("wave.frequency", def.Wave.Frequency)
	v.SetDefault("wave.phase", def.Wave.Phase)
	v.SetDefault("slider.title", def.Slider.Title)
	v.SetDefault("slider.start", def.Slider.Start)
	v.SetDefault("slider.end", def.Slider.End)
	v.SetDefault("slider.step", def.Slider.Step)
	v.SetDefault("plot.width", def.Plot.Width)
	v.SetDefault("plot.height", def.Plot.Height)
	v.SetDefault("plot.tools", def.Plot.Tools)
	v.SetDefault("plot.x_label", def.Plot.XLabel)
	v.SetDefault("plot.y_label", def.Plot.YLabel)
	v.SetDefault("plot.line_alpha", def.Plot.LineAlpha)
	v.SetDefault("plot.line_width", def.Plot.LineWidth)
	v.SetDefault("output.color", def.Output.Color)
}
