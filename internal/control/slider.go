// Package control implements the bounded slider that drives the phase.
package control

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/sinewave/internal/errors"
)

// AttrValue is the only slider attribute that emits change events.
const AttrValue = "value"

// Handler receives (attribute name, old value, new value) on change.
type Handler func(attr string, old, new float64)

// Unbind removes a change handler. Calling it more than once is a no-op.
type Unbind func()

type subscription struct {
	attr    string
	handler Handler
	active  bool
}

// Slider is a numeric control constrained to [Start, End] and moved in Step
// increments. Values outside the bounds are clamped, so subscribers only ever
// observe in-range values.
type Slider struct {
	title string
	value float64
	start float64
	end   float64
	step  float64

	subs []*subscription
}

// NewSlider creates a slider. The initial value is clamped into range.
func NewSlider(title string, value, start, end, step float64) (*Slider, error) {
	if math.IsNaN(start) || math.IsNaN(end) || !(end > start) {
		return nil, errors.New(errors.ErrInput,
			fmt.Sprintf("Slider %q has an empty range [%g, %g]", title, start, end),
			"The slider end must be greater than its start.")
	}
	if math.IsNaN(step) || step <= 0 {
		return nil, errors.New(errors.ErrInput,
			fmt.Sprintf("Slider %q has a non-positive step %g", title, step),
			"Use a step greater than zero, e.g. 0.1.")
	}
	s := &Slider{title: title, start: start, end: end, step: step}
	s.value = s.clamp(value)
	return s, nil
}

// Title is the label drawn next to the slider.
func (s *Slider) Title() string { return s.title }

// Value is the current value, always within [Start, End].
func (s *Slider) Value() float64 { return s.value }

// Start is the lower bound of the range.
func (s *Slider) Start() float64 { return s.start }

// End is the upper bound of the range.
func (s *Slider) End() float64 { return s.end }

// Step is the distance moved by Increment and Decrement.
func (s *Slider) Step() float64 { return s.step }

// Fraction returns the position of the value within [Start, End] as 0..1.
func (s *Slider) Fraction() float64 {
	return (s.value - s.start) / (s.end - s.start)
}

func (s *Slider) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.start
	}
	return math.Max(s.start, math.Min(s.end, v))
}

// OnChange registers h for changes of attr. Only AttrValue ever fires; other
// attribute names are accepted and never notified.
func (s *Slider) OnChange(attr string, h Handler) Unbind {
	sub := &subscription{attr: attr, handler: h, active: true}
	s.subs = append(s.subs, sub)
	return func() {
		sub.active = false
	}
}

// SetValue clamps v into range and, if the result differs from the current
// value, stores it and notifies value handlers in registration order. It
// returns the stored value.
func (s *Slider) SetValue(v float64) float64 {
	v = s.clamp(v)
	if v == s.value {
		return v
	}
	old := s.value
	s.value = v
	s.emit(AttrValue, old, v)
	return v
}

// Increment moves the value up by one step.
func (s *Slider) Increment() float64 {
	return s.SetValue(s.snap(s.value + s.step))
}

// Decrement moves the value down by one step.
func (s *Slider) Decrement() float64 {
	return s.SetValue(s.snap(s.value - s.step))
}

// Reset moves the value to Start.
func (s *Slider) Reset() float64 {
	return s.SetValue(s.start)
}

// snap rounds v onto the step grid anchored at Start, so repeated stepping
// does not accumulate floating point drift.
func (s *Slider) snap(v float64) float64 {
	n := math.Round((v - s.start) / s.step)
	return s.start + n*s.step
}

func (s *Slider) emit(attr string, old, new float64) {
	live := s.subs[:0]
	for _, sub := range s.subs {
		if sub.active {
			live = append(live, sub)
		}
	}
	s.subs = live

	snapshot := make([]*subscription, len(live))
	copy(snapshot, live)
	for _, sub := range snapshot {
		if sub.active && sub.attr == attr {
			sub.handler(attr, old, new)
		}
	}
}
