// Package spectral computes discrete Fourier transforms of ground-motion
// records and derives Fourier amplitude spectra from them.
//
// The FAS normalization convention is FAS[k] = |DFT[k]| * Δt, applied over the
// one-sided non-negative frequency half of the spectrum. Downstream comparison
// against stored reference spectra assumes this convention.
package spectral

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// DFT holds the discrete Fourier transform of a fixed-rate sample sequence
// together with the sampling interval and originating unit.
type DFT struct {
	timeDelta float64
	unit      string
	spectrum  []complex128
}

// Compute runs the discrete Fourier transform over the samples. The samples
// must be non-empty and timeDelta positive; unit must be a recognized
// ground-motion unit so the result stays attributable to a physical quantity.
func Compute(amplitudes []float64, timeDelta float64, unit string) (*DFT, error) {
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("empty sample sequence")
	}
	if timeDelta <= 0 {
		return nil, fmt.Errorf("time delta must be positive, got %g", timeDelta)
	}
	if !units.IsValid(unit) {
		return nil, units.NewUnsupportedUnitError(unit)
	}

	return &DFT{
		timeDelta: timeDelta,
		unit:      unit,
		spectrum:  fft.FFTReal(amplitudes),
	}, nil
}

// TimeDelta returns the sampling interval of the originating record in seconds
func (d *DFT) TimeDelta() float64 {
	return d.timeDelta
}

// Unit returns the unit of the originating record
func (d *DFT) Unit() string {
	return d.unit
}

// SampleCount returns the transform length N
func (d *DFT) SampleCount() int {
	return len(d.spectrum)
}

// binCount is the number of one-sided bins, DC and Nyquist included
func (d *DFT) binCount() int {
	return len(d.spectrum)/2 + 1
}

// Frequencies returns the ascending one-sided frequency axis in Hz, with bin
// spacing 1/(N*Δt). A single-sample transform has only the zero-frequency bin.
func (d *DFT) Frequencies() []float64 {
	n := len(d.spectrum)
	step := 1.0 / (float64(n) * d.timeDelta)

	freqs := make([]float64, d.binCount())
	for k := range freqs {
		freqs[k] = float64(k) * step
	}
	return freqs
}

// FAS returns the Fourier amplitude spectrum over the one-sided frequency
// axis, normalized as |DFT[k]| * Δt.
func (d *DFT) FAS() []float64 {
	fas := make([]float64, d.binCount())
	for k := range fas {
		fas[k] = cmplx.Abs(d.spectrum[k]) * d.timeDelta
	}
	return fas
}

// Spectrum returns a copy of the full two-sided complex spectrum
func (d *DFT) Spectrum() []complex128 {
	spectrum := make([]complex128, len(d.spectrum))
	copy(spectrum, d.spectrum)
	return spectrum
}
