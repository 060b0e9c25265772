package plot

import "math"

// Range is a closed interval on one axis.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Center returns the midpoint.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Fraction maps v to its relative position in the range (0 at Min, 1 at Max).
func (r Range) Fraction(v float64) float64 {
	if r.Span() == 0 {
		return 0.5
	}
	return (v - r.Min) / r.Span()
}

// Lerp maps a fraction back to a value in the range.
func (r Range) Lerp(f float64) float64 {
	return r.Min + f*r.Span()
}

// minZoomSpan bounds how far the x range can be zoomed in, relative to the
// home range.
const minZoomSpan = 1e-3

// View is the visible x window. The y range follows the data (see YRange).
// Home is the x range restored by Reset.
type View struct {
	X    Range
	Home Range
}

// NewView starts the view at home.
func NewView(home Range) View {
	return View{X: home, Home: home}
}

// Pan shifts the x range by frac of its span (negative pans left).
func (v View) Pan(frac float64) View {
	d := frac * v.X.Span()
	v.X.Min += d
	v.X.Max += d
	return v
}

// Zoom scales the x range around anchor by factor. factor < 1 zooms in.
// The span never drops below minZoomSpan of the home span.
func (v View) Zoom(factor, anchor float64) View {
	if factor <= 0 || math.IsNaN(factor) {
		return v
	}
	span := v.X.Span() * factor
	if floor := v.Home.Span() * minZoomSpan; span < floor {
		span = floor
		factor = span / v.X.Span()
	}
	v.X.Min = anchor - (anchor-v.X.Min)*factor
	v.X.Max = v.X.Min + span
	return v
}

// ZoomTo sets the x range to [a, b] (in any order). Degenerate selections
// are ignored.
func (v View) ZoomTo(a, b float64) View {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if hi-lo < v.Home.Span()*minZoomSpan {
		return v
	}
	v.X = Range{Min: lo, Max: hi}
	return v
}

// Reset restores the home range.
func (v View) Reset() View {
	v.X = v.Home
	return v
}

// IsHome reports whether the view shows the home range.
func (v View) IsHome() bool {
	return v.X == v.Home
}

// YRange returns the y axis range for data spanning [lo, hi]: the data range
// padded by 10% on each side. A flat line gets a unit range around it.
func YRange(lo, hi float64) Range {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return Range{Min: -1, Max: 1}
	}
	span := hi - lo
	if span == 0 {
		return Range{Min: lo - 0.5, Max: hi + 0.5}
	}
	pad := span * 0.1
	return Range{Min: lo - pad, Max: hi + pad}
}
