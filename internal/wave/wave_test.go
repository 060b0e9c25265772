package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestLinspace(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		n          int
		want       Domain
	}{
		{name: "zero samples", start: 0, end: 1, n: 0, want: Domain{}},
		{name: "negative samples", start: 0, end: 1, n: -3, want: Domain{}},
		{name: "single sample is start", start: 2, end: 5, n: 1, want: Domain{2}},
		{name: "two samples are endpoints", start: -1, end: 1, n: 2, want: Domain{-1, 1}},
		{name: "five samples", start: 0, end: 1, n: 5, want: Domain{0, 0.25, 0.5, 0.75, 1}},
		{name: "descending range", start: 1, end: 0, n: 3, want: Domain{1, 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.end, tt.n)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], tolerance, "index %d", i)
			}
		})
	}
}

func TestDefaultDomain(t *testing.T) {
	d := DefaultDomain()

	require.Len(t, d, 100)
	assert.Equal(t, 0.0, d[0])
	assert.Equal(t, 4*math.Pi, d[len(d)-1])

	step := 4 * math.Pi / 99
	for i := 1; i < len(d); i++ {
		assert.InDelta(t, step, d[i]-d[i-1], tolerance)
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1.0, p.Amplitude)
	assert.Equal(t, 0.0, p.Phase)
	assert.Equal(t, 1.0, p.Frequency)

	shifted := p.WithPhase(math.Pi)
	assert.Equal(t, math.Pi, shifted.Phase)
	assert.Equal(t, 0.0, p.Phase, "WithPhase must not modify the receiver")
}

func TestCompute_MatchesSineForPhases(t *testing.T) {
	d := DefaultDomain()
	for _, phase := range []float64{0, 0.1, 1, math.Pi / 2, math.Pi, 3, 2 * math.Pi} {
		ds := Compute(d, DefaultParams().WithPhase(phase))

		require.Equal(t, len(d), len(ds.X))
		require.Equal(t, len(d), len(ds.Y))
		for i := range d {
			assert.Equal(t, math.Sin(d[i]+phase), ds.Y[i], "phase %v index %d", phase, i)
		}
	}
}

func TestCompute_AmplitudeAndFrequency(t *testing.T) {
	d := Linspace(0, math.Pi, 7)
	p := Params{Amplitude: 2.5, Phase: 0.3, Frequency: 3}
	ds := Compute(d, p)

	for i, x := range d {
		assert.InDelta(t, 2.5*math.Sin(3*x+0.3), ds.Y[i], tolerance)
	}
}

func TestCompute_LengthsMatchDomain(t *testing.T) {
	for _, n := range []int{0, 1, 2, 100, 1000} {
		d := Linspace(0, 1, n)
		ds := Compute(d, DefaultParams())
		assert.Len(t, ds.X, n)
		assert.Len(t, ds.Y, n)
		assert.Equal(t, n, ds.Len())
	}
}

func TestCompute_DoesNotAliasDomain(t *testing.T) {
	d := Linspace(0, 1, 3)
	ds := Compute(d, DefaultParams())

	ds.X[0] = 42
	assert.Equal(t, 0.0, d[0])
	assert.Equal(t, DatasetName, ds.Name)
}

func TestCompute_PhaseBoundaries(t *testing.T) {
	d := DefaultDomain()
	zero := Compute(d, DefaultParams())
	full := Compute(d, DefaultParams().WithPhase(2*math.Pi))

	for i := range d {
		assert.Equal(t, math.Sin(d[i]), zero.Y[i])
		assert.InDelta(t, zero.Y[i], full.Y[i], tolerance)
	}
}

func TestCompute_Scenarios(t *testing.T) {
	d := DefaultDomain()

	t.Run("unshifted", func(t *testing.T) {
		ds := Compute(d, DefaultParams())
		assert.Equal(t, 0.0, ds.Y[0])

		_, y, ok := ds.At(math.Pi / 2)
		require.True(t, ok)
		assert.InDelta(t, 1.0, y, 0.01)
	})

	t.Run("phase pi", func(t *testing.T) {
		ds := Compute(d, DefaultParams().WithPhase(math.Pi))
		assert.InDelta(t, 0.0, ds.Y[0], tolerance)
		for i, x := range ds.X {
			assert.Equal(t, math.Sin(x+math.Pi), ds.Y[i])
		}
	})
}

func TestSample_Total(t *testing.T) {
	for _, x := range []float64{-1e9, -1, 0, 1, 1e9} {
		v := Sample(x, DefaultParams())
		assert.False(t, math.IsNaN(v))
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
}
