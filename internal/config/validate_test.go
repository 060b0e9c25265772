package config

import (
	"math"
	"testing"

	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "future version",
			mutate:      func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr:     true,
			errContains: "from the future",
		},
		{
			name:        "too few samples",
			mutate:      func(c *Config) { c.Domain.Samples = 1 },
			wantErr:     true,
			errContains: "domain.samples",
		},
		{
			name:        "empty domain",
			mutate:      func(c *Config) { c.Domain.End = c.Domain.Start },
			wantErr:     true,
			errContains: "is empty",
		},
		{
			name:        "infinite domain end",
			mutate:      func(c *Config) { c.Domain.End = math.Inf(1) },
			wantErr:     true,
			errContains: "domain",
		},
		{
			name:        "NaN amplitude",
			mutate:      func(c *Config) { c.Wave.Amplitude = math.NaN() },
			wantErr:     true,
			errContains: "finite",
		},
		{
			name:   "phase outside slider range is clamped later, not rejected",
			mutate: func(c *Config) { c.Wave.Phase = 100 },
		},
		{
			name:        "inverted slider",
			mutate:      func(c *Config) { c.Slider.Start, c.Slider.End = 1, 0 },
			wantErr:     true,
			errContains: "slider range",
		},
		{
			name:        "zero step",
			mutate:      func(c *Config) { c.Slider.Step = 0 },
			wantErr:     true,
			errContains: "slider.step",
		},
		{
			name:        "zero width",
			mutate:      func(c *Config) { c.Plot.Width = 0 },
			wantErr:     true,
			errContains: "not drawable",
		},
		{
			name:        "alpha above one",
			mutate:      func(c *Config) { c.Plot.LineAlpha = 1.5 },
			wantErr:     true,
			errContains: "line_alpha",
		},
		{
			name:        "zero line width",
			mutate:      func(c *Config) { c.Plot.LineWidth = 0 },
			wantErr:     true,
			errContains: "line_width",
		},
		{
			name:        "unknown tool",
			mutate:      func(c *Config) { c.Plot.Tools = []string{"pan", "lasso"} },
			wantErr:     true,
			errContains: "Unknown plot tool 'lasso'",
		},
		{
			name:   "no tools at all",
			mutate: func(c *Config) { c.Plot.Tools = nil },
		},
		{
			name:        "bad color",
			mutate:      func(c *Config) { c.Output.Color = "sometimes" },
			wantErr:     true,
			errContains: "output.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
