package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/rileyhilliard/sinewave/internal/config"
	"github.com/rileyhilliard/sinewave/internal/document"
	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/rileyhilliard/sinewave/internal/ui"
	"github.com/rileyhilliard/sinewave/internal/wave"
	"gopkg.in/yaml.v3"
)

// Snapshot output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
)

// SnapshotOptions holds options for the snapshot command.
type SnapshotOptions struct {
	Phase    float64 // Phase to compute, used when PhaseSet
	PhaseSet bool
	Format   string
	Logger   logger.Logger
}

// snapshotDoc is the json/yaml shape of a snapshot.
type snapshotDoc struct {
	Title   string       `json:"title" yaml:"title"`
	Params  wave.Params  `json:"params" yaml:"params"`
	Dataset wave.Dataset `json:"dataset" yaml:"dataset"`
}

// Snapshot computes the dataset for the configured (or given) phase and
// writes it to w. The phase goes through the slider, so it is clamped to the
// slider range.
func Snapshot(cfg *config.Config, opts SnapshotOptions, w io.Writer) error {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Format == "" {
		opts.Format = FormatTable
	}

	doc, err := document.New(documentOptions(cfg, opts.Logger))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't build the dataset from this config",
			"Check the slider section of "+config.ConfigFileName)
	}
	if opts.PhaseSet {
		if got := doc.SetPhase(opts.Phase); got != opts.Phase {
			opts.Logger.Warn("phase %g clamped to %g", opts.Phase, got)
		}
	}

	ds := doc.Dataset()
	switch opts.Format {
	case FormatTable:
		return writeTable(w, ds)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshotDoc{Title: doc.Title(), Params: doc.Params(), Dataset: ds})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshotDoc{Title: doc.Title(), Params: doc.Params(), Dataset: ds}); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, ds)
	default:
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown format: %s", opts.Format),
			"Use one of: table, json, yaml, csv")
	}
}

func writeTable(w io.Writer, ds wave.Dataset) error {
	columns := []ui.TableColumn{
		{Title: "i"},
		{Title: "x", Width: 10},
		{Title: "y", Width: 10},
	}
	rows := make([][]string, ds.Len())
	for i := range ds.X {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.FormatFloat(ds.X[i], 'f', 6, 64),
			strconv.FormatFloat(ds.Y[i], 'f', 6, 64),
		}
	}
	_, err := fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))
	return err
}

func writeCSV(w io.Writer, ds wave.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range ds.X {
		if err := cw.Write([]string{
			strconv.FormatFloat(ds.X[i], 'g', -1, 64),
			strconv.FormatFloat(ds.Y[i], 'g', -1, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
