package recordings

import (
	"fmt"
	"math"

	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// Horizontal frame rotation between north-east and radial-transverse,
// sample-wise through a 2D rotation matrix. The azimuth is the angle in
// degrees measured clockwise from north to the receiver-to-source radial
// direction. With this convention R points away from the source and T lies
// 90 degrees clockwise from R:
//
//	R =  -N*cos(az) - E*sin(az)
//	T =   N*sin(az) - E*cos(az)
//
// The matrix is orthogonal, so the inverse transform is its transpose.

// NeToRt rotates a {Z,N,E} recording into the {Z,R,T} frame. The vertical
// component passes through unchanged and a new recording is returned.
func NeToRt(rec *Recording, azimuth float64) (*Recording, error) {
	if err := checkAzimuth(azimuth); err != nil {
		return nil, err
	}
	if rec.ComponentSet() != ComponentSetZNE {
		return nil, NewInvalidComponentSetError(
			"north-east rotation requires a {Z,N,E} recording, got {" + string(rec.ComponentSet()) + "}")
	}

	n, _ := rec.Component("N")
	e, _ := rec.Component("E")
	if n.Unit() != e.Unit() {
		return nil, units.NewIncompatibleUnitError(e.Unit(),
			"horizontal components disagree on unit: N is "+n.Unit()+", E is "+e.Unit())
	}

	rad := azimuth * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	nAmp := n.Amplitudes()
	eAmp := e.Amplitudes()
	rAmp := make([]float64, len(nAmp))
	tAmp := make([]float64, len(nAmp))
	for i := range nAmp {
		rAmp[i] = -nAmp[i]*cos - eAmp[i]*sin
		tAmp[i] = nAmp[i]*sin - eAmp[i]*cos
	}

	return rebuildRotated(rec, map[string][]float64{"R": rAmp, "T": tAmp}, n.Unit())
}

// RtToNe rotates a {Z,R,T} recording back into the {Z,N,E} frame using the
// transpose of the forward matrix.
func RtToNe(rec *Recording, azimuth float64) (*Recording, error) {
	if err := checkAzimuth(azimuth); err != nil {
		return nil, err
	}
	if rec.ComponentSet() != ComponentSetZRT {
		return nil, NewInvalidComponentSetError(
			"radial-transverse rotation requires a {Z,R,T} recording, got {" + string(rec.ComponentSet()) + "}")
	}

	r, _ := rec.Component("R")
	t, _ := rec.Component("T")
	if r.Unit() != t.Unit() {
		return nil, units.NewIncompatibleUnitError(t.Unit(),
			"horizontal components disagree on unit: R is "+r.Unit()+", T is "+t.Unit())
	}

	rad := azimuth * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	rAmp := r.Amplitudes()
	tAmp := t.Amplitudes()
	nAmp := make([]float64, len(rAmp))
	eAmp := make([]float64, len(rAmp))
	for i := range rAmp {
		nAmp[i] = -rAmp[i]*cos + tAmp[i]*sin
		eAmp[i] = -rAmp[i]*sin - tAmp[i]*cos
	}

	return rebuildRotated(rec, map[string][]float64{"N": nAmp, "E": eAmp}, r.Unit())
}

// checkAzimuth rejects out-of-range values instead of wrapping them, so a
// caller passing a wrong angle hears about it.
func checkAzimuth(azimuth float64) error {
	if azimuth < 0 || azimuth >= 360 {
		return NewInvalidAzimuthError(fmt.Sprintf(
			"azimuth must satisfy 0 <= az < 360, got %g", azimuth))
	}
	return nil
}

// rebuildRotated assembles the target-triad recording from the rotated
// horizontals plus a fresh copy of the vertical component.
func rebuildRotated(rec *Recording, horizontals map[string][]float64, unit string) (*Recording, error) {
	z, _ := rec.Component("Z")

	components := make(map[string]*Seismogram, 3)

	zCopy, err := NewSeismogram(z.TimeDelta(), z.Amplitudes(), z.Unit())
	if err != nil {
		return nil, err
	}
	components["Z"] = zCopy

	for code, amplitudes := range horizontals {
		s, err := NewSeismogram(rec.TimeDelta(), amplitudes, unit)
		if err != nil {
			return nil, err
		}
		components[code] = s
	}

	return NewRecording(components)
}
