// Package wave samples y = A·sin(ω·x + φ) over a fixed domain.
//
// Everything here is pure: Compute never mutates its inputs and always returns
// freshly allocated slices, so a Dataset handed to a source can be treated as
// immutable once published.
package wave

import "math"

// DatasetName is the name under which the sine samples are published.
const DatasetName = "sine"

// Default sampling of the domain: 100 points over [0, 4π].
const (
	DefaultSamples = 100
	DefaultStart   = 0.0
	DefaultEnd     = 4 * math.Pi
)

// Domain is the ordered sequence of x-coordinates sampled for plotting.
type Domain []float64

// Params are the parameters of the sine function.
type Params struct {
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

// DefaultParams returns amplitude 1, phase 0, angular frequency 1.
func DefaultParams() Params {
	return Params{Amplitude: 1, Phase: 0, Frequency: 1}
}

// WithPhase returns a copy of p with the phase replaced.
func (p Params) WithPhase(phase float64) Params {
	p.Phase = phase
	return p
}

// Linspace returns n evenly spaced values over [start, end], both ends
// included. n == 1 yields [start]; n <= 0 yields an empty domain.
func Linspace(start, end float64, n int) Domain {
	if n <= 0 {
		return Domain{}
	}
	d := make(Domain, n)
	if n == 1 {
		d[0] = start
		return d
	}
	step := (end - start) / float64(n-1)
	for i := range d {
		d[i] = start + float64(i)*step
	}
	// Pin the last sample so rounding never overshoots the requested end.
	d[n-1] = end
	return d
}

// DefaultDomain returns DefaultSamples points over [DefaultStart, DefaultEnd].
func DefaultDomain() Domain {
	return Linspace(DefaultStart, DefaultEnd, DefaultSamples)
}

// Sample evaluates the wave at a single x.
func Sample(x float64, p Params) float64 {
	return p.Amplitude * math.Sin(p.Frequency*x+p.Phase)
}

// Compute samples the wave over d. The returned dataset owns copies of its
// slices and always satisfies len(X) == len(Y) == len(d).
func Compute(d Domain, p Params) Dataset {
	x := make([]float64, len(d))
	y := make([]float64, len(d))
	copy(x, d)
	for i, v := range d {
		y[i] = Sample(v, p)
	}
	return Dataset{Name: DatasetName, X: x, Y: y}
}
