// Package document wires the wave model, the observable source and the phase
// slider into one context object that a renderer can host.
package document

import (
	"math"

	"github.com/rileyhilliard/sinewave/internal/control"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/rileyhilliard/sinewave/internal/source"
	"github.com/rileyhilliard/sinewave/internal/wave"
)

// DefaultTitle is the document title shown by renderers.
const DefaultTitle = "A Sine Wave"

// SliderOptions describes the phase control.
type SliderOptions struct {
	Title string
	Start float64
	End   float64
	Step  float64
}

// Options configure a Document. Start from DefaultOptions and override.
type Options struct {
	Title   string
	Samples int
	Start   float64
	End     float64
	Params  wave.Params
	Slider  SliderOptions
	Logger  logger.Logger
}

// DefaultOptions returns 100 samples over [0, 4π], unit amplitude and
// frequency, zero phase and a "Phase" slider over [0, 2π] in 0.1 steps.
func DefaultOptions() Options {
	return Options{
		Title:   DefaultTitle,
		Samples: wave.DefaultSamples,
		Start:   wave.DefaultStart,
		End:     wave.DefaultEnd,
		Params:  wave.DefaultParams(),
		Slider: SliderOptions{
			Title: "Phase",
			Start: 0,
			End:   2 * math.Pi,
			Step:  0.1,
		},
	}
}

// Document holds the domain, the wave parameters, the current dataset (via
// its source) and the slider that changes the phase.
type Document struct {
	title  string
	domain wave.Domain
	params wave.Params
	src    *source.Source
	slider *control.Slider
	log    logger.Logger
}

// New builds the domain and initial dataset and subscribes OnPhaseChanged to
// the slider's value changes. The initial phase is clamped to the slider
// range before the first dataset is computed.
func New(opts Options) (*Document, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	slider, err := control.NewSlider(opts.Slider.Title, opts.Params.Phase,
		opts.Slider.Start, opts.Slider.End, opts.Slider.Step)
	if err != nil {
		return nil, err
	}

	params := opts.Params.WithPhase(slider.Value())
	domain := wave.Linspace(opts.Start, opts.End, opts.Samples)

	d := &Document{
		title:  opts.Title,
		domain: domain,
		params: params,
		src:    source.New(wave.Compute(domain, params)),
		slider: slider,
		log:    opts.Logger,
	}

	slider.OnChange(control.AttrValue, func(_ string, _, new float64) {
		d.OnPhaseChanged(new)
	})

	d.log.Debug("document %q: %d samples over [%g, %g], phase %g",
		d.title, len(domain), opts.Start, opts.End, params.Phase)
	return d, nil
}

// OnPhaseChanged recomputes the dataset for newPhase and publishes it.
// The domain is fixed for the document's lifetime and is reused.
func (d *Document) OnPhaseChanged(newPhase float64) {
	d.params = d.params.WithPhase(newPhase)
	d.src.Publish(wave.Compute(d.domain, d.params))
	d.log.Debug("phase changed to %.4f (revision %d)", newPhase, d.src.Revision())
}

// SetPhase moves the slider, which in turn triggers OnPhaseChanged when the
// clamped value differs from the current one.
func (d *Document) SetPhase(phase float64) float64 {
	return d.slider.SetValue(phase)
}

// Title is the plot title.
func (d *Document) Title() string { return d.title }

// Domain returns a copy of the sample x-coordinates. The document keeps its
// own slice so every recompute samples the same points.
func (d *Document) Domain() wave.Domain {
	return append(wave.Domain(nil), d.domain...)
}

// Params are the wave parameters of the last computed dataset.
func (d *Document) Params() wave.Params { return d.params }

// Source is the reactive source renderers bind to.
func (d *Document) Source() *source.Source { return d.src }

// Slider is the phase control.
func (d *Document) Slider() *control.Slider { return d.slider }

// Dataset is the dataset most recently published by Source.
func (d *Document) Dataset() wave.Dataset { return d.src.Data() }
