// Package source holds the observable dataset a renderer draws from.
//
// A Source owns exactly one dataset and replaces it wholesale on Publish.
// Observers register with Bind and are called, in registration order, with
// every newly published dataset. Observers never see a partially updated
// dataset: the new value is stored before any binding runs.
//
// Thread safety: a Source is driven from a single event loop (the Bubble Tea
// update goroutine, or the caller's goroutine for static renders). Publish,
// Bind and Unbind must not be called concurrently.
package source

import (
	"github.com/rileyhilliard/sinewave/internal/wave"
)

// Unbind removes a binding. Calling it more than once is a no-op.
type Unbind func()

type binding struct {
	fn     func(wave.Dataset)
	active bool
}

// Source is a mutable named dataset with change notification.
type Source struct {
	data     wave.Dataset
	revision uint64
	bindings []*binding
}

// New creates a source holding the initial dataset. The initial dataset does
// not count as a publish.
func New(initial wave.Dataset) *Source {
	return &Source{data: initial}
}

// Name returns the name of the current dataset.
func (s *Source) Name() string {
	return s.data.Name
}

// Data returns the most recently published dataset. Callers must treat the
// returned slices as read-only.
func (s *Source) Data() wave.Dataset {
	return s.data
}

// Revision returns the number of publishes since New.
func (s *Source) Revision() uint64 {
	return s.revision
}

// Publish replaces the current dataset and notifies every active binding.
func (s *Source) Publish(d wave.Dataset) {
	s.data = d
	s.revision++

	// Drop inactive bindings before notifying so unbound observers are
	// released.
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	for i := len(active); i < len(s.bindings); i++ {
		s.bindings[i] = nil
	}
	s.bindings = active

	// A binding may Bind or Unbind while being notified; iterate over a
	// snapshot and re-check active so an unbind takes effect immediately.
	snapshot := make([]*binding, len(active))
	copy(snapshot, active)
	for _, b := range snapshot {
		if b.active {
			b.fn(d)
		}
	}
}

// Bind registers fn to be called with each published dataset.
func (s *Source) Bind(fn func(wave.Dataset)) Unbind {
	b := &binding{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	return func() {
		b.active = false
	}
}

// Bindings returns the number of active bindings.
func (s *Source) Bindings() int {
	n := 0
	for _, b := range s.bindings {
		if b.active {
			n++
		}
	}
	return n
}
