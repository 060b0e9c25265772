package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rileyhilliard/sinewave/internal/config"
	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_CSV(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshot(config.DefaultConfig(), SnapshotOptions{Format: FormatCSV}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 101)
	assert.Equal(t, []string{"x", "y"}, records[0])

	first := records[1]
	assert.Equal(t, "0", first[0])
	assert.Equal(t, "0", first[1])

	last := records[100]
	x, err := strconv.ParseFloat(last[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, x, 1e-12)
}

func TestSnapshot_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshot(config.DefaultConfig(), SnapshotOptions{
		Format:   FormatJSON,
		Phase:    math.Pi / 2,
		PhaseSet: true,
	}, &buf)
	require.NoError(t, err)

	var got snapshotDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "A Sine Wave", got.Title)
	assert.InDelta(t, math.Pi/2, got.Params.Phase, 1e-12)
	assert.Equal(t, "sine", got.Dataset.Name)
	require.Len(t, got.Dataset.Y, 100)

	// sin(x + π/2) = cos(x)
	for i, x := range got.Dataset.X {
		assert.InDelta(t, math.Cos(x), got.Dataset.Y[i], 1e-9)
	}
}

func TestSnapshot_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshot(config.DefaultConfig(), SnapshotOptions{Format: FormatYAML}, &buf)
	require.NoError(t, err)

	var got snapshotDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "A Sine Wave", got.Title)
	assert.Len(t, got.Dataset.X, 100)
	assert.Equal(t, 1.0, got.Params.Amplitude)
}

func TestSnapshot_Table(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshot(config.DefaultConfig(), SnapshotOptions{}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "0.000000")
	assert.Contains(t, out, "0.126933")
}

func TestSnapshot_PhaseClamped(t *testing.T) {
	log := logger.NewBufferLogger()

	var buf bytes.Buffer
	err := Snapshot(config.DefaultConfig(), SnapshotOptions{
		Format:   FormatJSON,
		Phase:    10,
		PhaseSet: true,
		Logger:   log,
	}, &buf)
	require.NoError(t, err)

	var got snapshotDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 2*math.Pi, got.Params.Phase, 1e-12)
	assert.True(t, log.HasLevel("warn"))
}

func TestSnapshot_ConfigDriven(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Domain.Samples = 5
	cfg.Wave.Amplitude = 2
	cfg.Wave.Phase = 1

	var buf bytes.Buffer
	require.NoError(t, Snapshot(cfg, SnapshotOptions{Format: FormatJSON}, &buf))

	var got snapshotDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Dataset.X, 5)
	assert.InDelta(t, 2*math.Sin(1), got.Dataset.Y[0], 1e-12)
}

func TestSnapshot_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		err := Snapshot(config.DefaultConfig(), SnapshotOptions{Format: "xml"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInput))
		assert.Contains(t, err.Error(), "Unknown format: xml")
	})

	t.Run("bad slider", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Slider.Step = 0
		err := Snapshot(cfg, SnapshotOptions{Format: FormatCSV}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	cfg := config.DefaultConfig()
	cfg.Domain.Samples = 3
	require.NoError(t, config.Write(path, cfg))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"snapshot", "--config", path, "--format", "csv"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
		snapshotFormatFlag = FormatTable
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "x,y", lines[0])

	_, err := os.Stat(path)
	require.NoError(t, err)
}
