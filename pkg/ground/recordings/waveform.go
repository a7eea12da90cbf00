// Package recordings models single- and multi-component ground-motion
// recordings: fixed-rate waveforms tagged with a physical unit, grouped into
// component sets, with peak extraction, spectral decomposition and horizontal
// frame rotation.
package recordings

import (
	"fmt"

	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// Waveform is a fixed-rate sequence of amplitude samples with a physical
// unit. Instances are immutable after construction; derived views such as
// unit-converted copies are new instances.
type Waveform struct {
	timeDelta  float64
	amplitudes []float64
	unit       string
}

// NewWaveform validates and constructs a waveform. The sample buffer is
// copied so the caller keeps no handle into the new instance.
func NewWaveform(timeDelta float64, amplitudes []float64, unit string) (*Waveform, error) {
	if timeDelta <= 0 {
		return nil, fmt.Errorf("time delta must be positive, got %g", timeDelta)
	}
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("amplitude sequence must be non-empty")
	}
	if !units.IsValid(unit) {
		return nil, units.NewUnsupportedUnitError(unit)
	}

	buf := make([]float64, len(amplitudes))
	copy(buf, amplitudes)

	return &Waveform{
		timeDelta:  timeDelta,
		amplitudes: buf,
		unit:       unit,
	}, nil
}

// TimeDelta returns the interval between samples in seconds
func (w *Waveform) TimeDelta() float64 {
	return w.timeDelta
}

// Unit returns the unit of the amplitude samples
func (w *Waveform) Unit() string {
	return w.unit
}

// SampleCount returns the number of samples
func (w *Waveform) SampleCount() int {
	return len(w.amplitudes)
}

// Duration returns the time of the last sample relative to the first,
// timeDelta * (N - 1). A single-sample waveform has zero duration.
func (w *Waveform) Duration() float64 {
	return w.timeDelta * float64(len(w.amplitudes)-1)
}

// At returns the amplitude at sample index i
func (w *Waveform) At(i int) float64 {
	return w.amplitudes[i]
}

// Amplitudes returns a copy of the sample sequence
func (w *Waveform) Amplitudes() []float64 {
	buf := make([]float64, len(w.amplitudes))
	copy(buf, w.amplitudes)
	return buf
}
