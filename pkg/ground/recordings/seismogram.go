package recordings

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quakemetrics/groundmotion/pkg/ground/spectral"
	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// Seismogram is a waveform whose ground-motion type follows from its unit
type Seismogram struct {
	Waveform
}

// NewSeismogram validates and constructs a seismogram
func NewSeismogram(timeDelta float64, amplitudes []float64, unit string) (*Seismogram, error) {
	w, err := NewWaveform(timeDelta, amplitudes, unit)
	if err != nil {
		return nil, err
	}
	return &Seismogram{Waveform: *w}, nil
}

// GMT returns the ground-motion type. It is always derived from the unit,
// which was validated at construction, so the lookup cannot fail.
func (s *Seismogram) GMT() units.Kind {
	kind, _ := units.KindOf(s.unit)
	return kind
}

// PGM returns the peak ground motion, the maximum absolute amplitude. When
// targetUnit is non-empty the peak is converted to it; the target must belong
// to the same kind as the current unit.
func (s *Seismogram) PGM(targetUnit string) (float64, error) {
	peak := 0.0
	for _, a := range s.amplitudes {
		if abs := math.Abs(a); abs > peak {
			peak = abs
		}
	}
	if targetUnit == "" || targetUnit == s.unit {
		return peak, nil
	}
	return units.Convert(peak, s.unit, targetUnit)
}

// DFT computes the discrete Fourier transform of the seismogram. When
// targetUnit is non-empty the amplitudes are converted to it first, under the
// same-kind rule.
func (s *Seismogram) DFT(targetUnit string) (*spectral.DFT, error) {
	if targetUnit == "" || targetUnit == s.unit {
		return spectral.Compute(s.amplitudes, s.timeDelta, s.unit)
	}

	converted, err := s.ConvertTo(targetUnit)
	if err != nil {
		return nil, err
	}
	return spectral.Compute(converted.amplitudes, converted.timeDelta, converted.unit)
}

// ConvertTo returns a new seismogram with all amplitudes rescaled to the
// target unit. The receiver is untouched.
func (s *Seismogram) ConvertTo(targetUnit string) (*Seismogram, error) {
	factor, err := units.Convert(1, s.unit, targetUnit)
	if err != nil {
		return nil, err
	}

	buf := s.Amplitudes()
	floats.Scale(factor, buf)

	return NewSeismogram(s.timeDelta, buf, targetUnit)
}

// Equal reports whether two seismograms have identical sample interval,
// element-wise identical amplitudes and the same unit.
func (s *Seismogram) Equal(o *Seismogram) bool {
	if o == nil {
		return false
	}
	return s.timeDelta == o.timeDelta &&
		s.unit == o.unit &&
		floats.Equal(s.amplitudes, o.amplitudes)
}
