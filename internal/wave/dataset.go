package wave

import (
	"math"
	"sort"
)

// Dataset is a named pair of equal-length x and y sequences.
type Dataset struct {
	Name string    `json:"name" yaml:"name"`
	X    []float64 `json:"x" yaml:"x"`
	Y    []float64 `json:"y" yaml:"y"`
}

// Bounds is the extent of a dataset along both axes.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.X)
}

// Empty reports whether the dataset has no samples.
func (d Dataset) Empty() bool {
	return len(d.X) == 0
}

// Equal reports whether two datasets hold the same name and samples.
func (d Dataset) Equal(o Dataset) bool {
	if d.Name != o.Name || len(d.X) != len(o.X) || len(d.Y) != len(o.Y) {
		return false
	}
	for i := range d.X {
		if d.X[i] != o.X[i] {
			return false
		}
	}
	for i := range d.Y {
		if d.Y[i] != o.Y[i] {
			return false
		}
	}
	return true
}

// Bounds returns the min/max of X and Y. An empty dataset yields all zeros.
func (d Dataset) Bounds() Bounds {
	if d.Empty() {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, v := range d.X {
		b.MinX = math.Min(b.MinX, v)
		b.MaxX = math.Max(b.MaxX, v)
	}
	for _, v := range d.Y {
		b.MinY = math.Min(b.MinY, v)
		b.MaxY = math.Max(b.MaxY, v)
	}
	return b
}

// At returns the sample whose x is nearest to x. X must be sorted ascending,
// which holds for every dataset produced by Compute over a Linspace domain.
// ok is false for an empty dataset.
func (d Dataset) At(x float64) (sx, sy float64, ok bool) {
	n := len(d.X)
	if n == 0 || len(d.Y) != n {
		return 0, 0, false
	}
	i := sort.SearchFloat64s(d.X, x)
	switch {
	case i == 0:
	case i == n:
		i = n - 1
	case x-d.X[i-1] <= d.X[i]-x:
		i--
	}
	return d.X[i], d.Y[i], true
}
