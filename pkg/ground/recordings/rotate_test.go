package recordings

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

func zneRecording(t *testing.T, n, e []float64) *Recording {
	t.Helper()
	rec, err := NewRecording(map[string]*Seismogram{
		"Z": mustSeismogram(t, 0.005, make([]float64, len(n)), "m/s"),
		"N": mustSeismogram(t, 0.005, n, "m/s"),
		"E": mustSeismogram(t, 0.005, e, "m/s"),
	})
	require.NoError(t, err)
	return rec
}

func TestNeToRtAzimuthZero(t *testing.T) {
	rec := zneRecording(t, []float64{1, 0, 0}, []float64{0, 0, 0})

	rotated, err := NeToRt(rec, 0)
	require.NoError(t, err)
	assert.Equal(t, ComponentSetZRT, rotated.ComponentSet())

	r, _ := rotated.Component("R")
	tr, _ := rotated.Component("T")
	assert.InDeltaSlice(t, []float64{-1, 0, 0}, r.Amplitudes(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, tr.Amplitudes(), 1e-12)
}

func TestNeToRtAzimuthNinety(t *testing.T) {
	rec := zneRecording(t, []float64{1, 0, 0}, []float64{0, 0, 0})

	rotated, err := NeToRt(rec, 90)
	require.NoError(t, err)

	r, _ := rotated.Component("R")
	tr, _ := rotated.Component("T")
	assert.InDeltaSlice(t, []float64{0, 0, 0}, r.Amplitudes(), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, tr.Amplitudes(), 1e-12)
}

func TestNeToRtVerticalPassesThrough(t *testing.T) {
	z := []float64{0.5, -0.25, 1.75}
	rec, err := NewRecording(map[string]*Seismogram{
		"Z": mustSeismogram(t, 0.005, z, "m/s"),
		"N": mustSeismogram(t, 0.005, []float64{1, 2, 3}, "m/s"),
		"E": mustSeismogram(t, 0.005, []float64{4, 5, 6}, "m/s"),
	})
	require.NoError(t, err)

	rotated, err := NeToRt(rec, 123.4)
	require.NoError(t, err)

	rotatedZ, _ := rotated.Component("Z")
	assert.Equal(t, z, rotatedZ.Amplitudes())

	// the source recording is untouched
	n, _ := rec.Component("N")
	assert.Equal(t, []float64{1, 2, 3}, n.Amplitudes())
	assert.Equal(t, ComponentSetZNE, rec.ComponentSet())
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	n := make([]float64, 64)
	e := make([]float64, 64)
	for i := range n {
		n[i] = rng.NormFloat64()
		e[i] = rng.NormFloat64()
	}

	for _, azimuth := range []float64{0, 17.5, 90, 180, 271.25, 359.99} {
		rec := zneRecording(t, n, e)

		rotated, err := NeToRt(rec, azimuth)
		require.NoError(t, err)
		back, err := RtToNe(rotated, azimuth)
		require.NoError(t, err)

		gotN, _ := back.Component("N")
		gotE, _ := back.Component("E")
		assert.InDeltaSlice(t, n, gotN.Amplitudes(), 1e-9, "azimuth %g", azimuth)
		assert.InDeltaSlice(t, e, gotE.Amplitudes(), 1e-9, "azimuth %g", azimuth)
	}
}

func TestRotationAzimuthRange(t *testing.T) {
	rec := zneRecording(t, []float64{1}, []float64{2})

	for _, azimuth := range []float64{-0.001, 360, 720, -90} {
		_, err := NeToRt(rec, azimuth)
		require.Error(t, err, "azimuth %g", azimuth)
		assert.True(t, IsInvalidAzimuth(err))
	}
}

func TestRotationWrongFrame(t *testing.T) {
	zne := zneRecording(t, []float64{1}, []float64{2})

	_, err := RtToNe(zne, 45)
	require.Error(t, err)
	assert.True(t, IsInvalidComponentSet(err))

	zrt, err := NeToRt(zne, 45)
	require.NoError(t, err)

	_, err = NeToRt(zrt, 45)
	require.Error(t, err)
	assert.True(t, IsInvalidComponentSet(err))
}

func TestRotationMismatchedHorizontalUnits(t *testing.T) {
	rec, err := NewRecording(map[string]*Seismogram{
		"Z": mustSeismogram(t, 0.005, []float64{1}, "m/s"),
		"N": mustSeismogram(t, 0.005, []float64{1}, "m/s"),
		"E": mustSeismogram(t, 0.005, []float64{1}, "cm/s"),
	})
	require.NoError(t, err)

	_, err = NeToRt(rec, 45)
	require.Error(t, err)
	assert.True(t, units.IsIncompatibleUnit(err))
}
