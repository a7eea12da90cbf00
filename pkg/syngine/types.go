// Package syngine builds requests for a remote synthetic-seismogram service
// and parses the returned miniSEED byte stream into ground-motion recordings.
// The IRIS Synthetics Engine computes the traces from precalculated Green's
// function databases; this package is only the query and transport boundary.
package syngine

import (
	"fmt"

	"github.com/quakemetrics/groundmotion/pkg/ground/recordings"
	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// MomentTensor carries the six independent components of a symmetric moment
// tensor in the USE (radial, theta, phi) convention. The tensor algebra lives
// with the producer; here the components are plain scalars for the request.
type MomentTensor struct {
	RR float64 `json:"rr"`
	TT float64 `json:"tt"`
	PP float64 `json:"pp"`
	RT float64 `json:"rt"`
	TP float64 `json:"tp"`
	PR float64 `json:"pr"`
}

// Request holds the validated parameters of one synthetic-seismogram query
type Request struct {
	SourceLon   float64
	SourceLat   float64
	SourceDepth float64 // meters, positive down
	Tensor      MomentTensor
	ReceiverLon float64
	ReceiverLat float64

	// Model selects the precomputed Green's function database. Empty means
	// the client's configured default.
	Model string
	// SourceWidth is the source time function smoothing width; zero means
	// the service default.
	SourceWidth int
	// Duration overrides the trace length in seconds; zero means the
	// service default.
	Duration float64

	GMT        units.Kind
	Components recordings.ComponentSet
}

// Validate fails fast on the first out-of-range parameter
func (r *Request) Validate() error {
	if err := checkLon("source longitude", r.SourceLon); err != nil {
		return err
	}
	if err := checkLat("source latitude", r.SourceLat); err != nil {
		return err
	}
	if r.SourceDepth <= 0 {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"source depth must be positive meters, got %g", r.SourceDepth))
	}
	if err := checkLon("receiver longitude", r.ReceiverLon); err != nil {
		return err
	}
	if err := checkLat("receiver latitude", r.ReceiverLat); err != nil {
		return err
	}
	if r.SourceWidth < 0 {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"source time function width must be a positive integer, got %d", r.SourceWidth))
	}
	if r.Duration < 0 {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"duration must be positive seconds, got %g", r.Duration))
	}
	if !r.GMT.IsValid() {
		return NewInvalidGeophysicalInputError("ground-motion type selector is not one of displacement, velocity, acceleration")
	}
	if r.Components != recordings.ComponentSetZRT && r.Components != recordings.ComponentSetZNE {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"component selector must be ZRT or ZNE, got %q", r.Components))
	}
	return nil
}

func checkLon(name string, v float64) error {
	if v < -180 || v > 180 {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"%s must be within [-180, 180] degrees, got %g", name, v))
	}
	return nil
}

func checkLat(name string, v float64) error {
	if v < -90 || v > 90 {
		return NewInvalidGeophysicalInputError(fmt.Sprintf(
			"%s must be within [-90, 90] degrees, got %g", name, v))
	}
	return nil
}
