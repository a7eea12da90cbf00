package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakemetrics/groundmotion/internal/logging"
	"github.com/quakemetrics/groundmotion/pkg/ground/recordings"
)

func testApp() *App {
	return &App{logger: logging.NewLogger("error")}
}

func writeAmplitudeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amplitudes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadAmplitudes(t *testing.T) {
	path := writeAmplitudeFile(t, "0.0 1.0\n-3.8996\t2.0\n")

	amplitudes, err := readAmplitudes(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, -3.8996, 2}, amplitudes)
}

func TestReadAmplitudesErrors(t *testing.T) {
	_, err := readAmplitudes(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := writeAmplitudeFile(t, "  \n\t\n")
	_, err = readAmplitudes(empty)
	assert.Error(t, err)

	bad := writeAmplitudeFile(t, "1.0 two 3.0")
	_, err = readAmplitudes(bad)
	assert.Error(t, err)
}

func TestComputePGM(t *testing.T) {
	path := writeAmplitudeFile(t, "0.0 1.0 -3.8996 2.0")

	result, err := testApp().ComputePGM(path, 0.005, "m/s2", "")
	require.NoError(t, err)

	assert.Equal(t, 3.8996, result.PGM)
	assert.Equal(t, "m/s2", result.Unit)
	assert.Equal(t, "acceleration", result.GMT)
	assert.Equal(t, 4, result.SampleCount)
}

func TestComputePGMTargetUnit(t *testing.T) {
	path := writeAmplitudeFile(t, "0.0 1.0 -3.8996 2.0")

	result, err := testApp().ComputePGM(path, 0.005, "m/s2", "cm/s2")
	require.NoError(t, err)

	assert.InDelta(t, 389.96, result.PGM, 1e-9)
	assert.Equal(t, "cm/s2", result.Unit)
}

func TestComputeSpectrum(t *testing.T) {
	path := writeAmplitudeFile(t, "1.0 2.0 3.0 4.0")

	result, err := testApp().ComputeSpectrum(path, 0.01, "m/s", "")
	require.NoError(t, err)

	require.Len(t, result.Points, 3) // N/2 + 1 bins
	assert.Equal(t, "m/s", result.Unit)
	assert.Equal(t, 0.01, result.TimeDelta)
	assert.Equal(t, 0.0, result.Points[0].Frequency)
	assert.InDelta(t, 10*0.01, result.Points[0].Amplitude, 1e-9) // sum * dt
}

func TestSummarizeRecording(t *testing.T) {
	z, err := recordings.NewSeismogram(0.005, []float64{0, 1, -3.8996, 2}, "m/s2")
	require.NoError(t, err)
	r, err := recordings.NewSeismogram(0.005, []float64{1, 1, 1, 1}, "m/s2")
	require.NoError(t, err)
	tr, err := recordings.NewSeismogram(0.005, []float64{0, 0, 0, -2}, "m/s2")
	require.NoError(t, err)

	rec, err := recordings.NewRecording(map[string]*recordings.Seismogram{
		"Z": z, "R": r, "T": tr,
	})
	require.NoError(t, err)

	summary, err := testApp().SummarizeRecording(rec, "ak135f_2s", "")
	require.NoError(t, err)

	assert.Equal(t, "ZRT", summary.ComponentSet)
	require.Len(t, summary.Components, 3)

	// components come back sorted
	assert.Equal(t, "R", summary.Components[0].Component)
	assert.Equal(t, "T", summary.Components[1].Component)
	assert.Equal(t, "Z", summary.Components[2].Component)

	assert.Equal(t, 3.8996, summary.Components[2].PGM)
	assert.Equal(t, "acceleration", summary.Components[2].GMT)
	assert.InDelta(t, 0.015, summary.Components[2].Duration, 1e-12)
}
