package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quakemetrics/groundmotion/internal/logging"
	"github.com/quakemetrics/groundmotion/pkg/ground/recordings"
	"github.com/quakemetrics/groundmotion/pkg/syngine"
)

// FetchOptions extends a synthetics request with post-processing choices
type FetchOptions struct {
	Request *syngine.Request
	// RotateAzimuth, when set, rotates the fetched recording into the
	// complementary horizontal frame.
	RotateAzimuth *float64
	// TargetUnit converts the reported peaks; empty keeps the native unit.
	TargetUnit string
}

// FetchRecording retrieves a synthetic recording and summarizes it
func (a *App) FetchRecording(ctx context.Context, opts *FetchOptions) (*RecordingSummary, error) {
	rec, err := a.client.Fetch(ctx, opts.Request)
	if err != nil {
		return nil, err
	}

	if opts.RotateAzimuth != nil {
		rec, err = rotateRecording(rec, *opts.RotateAzimuth)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Recording rotated", logging.Fields{
			"azimuth":       *opts.RotateAzimuth,
			"component_set": string(rec.ComponentSet()),
		})
	}

	return a.SummarizeRecording(rec, opts.Request.Model, opts.TargetUnit)
}

// rotateRecording applies the rotation matching the recording's current frame
func rotateRecording(rec *recordings.Recording, azimuth float64) (*recordings.Recording, error) {
	switch rec.ComponentSet() {
	case recordings.ComponentSetZNE:
		return recordings.NeToRt(rec, azimuth)
	default:
		return recordings.RtToNe(rec, azimuth)
	}
}

// SummarizeRecording builds the per-component summary of a recording
func (a *App) SummarizeRecording(rec *recordings.Recording, model, targetUnit string) (*RecordingSummary, error) {
	summary := &RecordingSummary{
		Model:        model,
		ComponentSet: string(rec.ComponentSet()),
	}

	for _, code := range rec.ComponentCodes() {
		s, _ := rec.Component(code)

		pgm, err := s.PGM(targetUnit)
		if err != nil {
			return nil, err
		}
		unit := s.Unit()
		if targetUnit != "" {
			unit = targetUnit
		}

		summary.Components = append(summary.Components, ComponentSummary{
			Component:   code,
			Unit:        unit,
			GMT:         s.GMT().String(),
			SampleCount: s.SampleCount(),
			TimeDelta:   s.TimeDelta(),
			Duration:    s.Duration(),
			PGM:         pgm,
		})
	}

	return summary, nil
}

// ComputeSpectrum reads an amplitude file and returns its Fourier amplitude
// spectrum over the one-sided frequency axis.
func (a *App) ComputeSpectrum(path string, timeDelta float64, unit, targetUnit string) (*SpectrumResult, error) {
	s, err := a.loadSeismogram(path, timeDelta, unit)
	if err != nil {
		return nil, err
	}

	dft, err := s.DFT(targetUnit)
	if err != nil {
		return nil, err
	}

	freqs := dft.Frequencies()
	fas := dft.FAS()

	result := &SpectrumResult{
		Unit:      dft.Unit(),
		TimeDelta: dft.TimeDelta(),
		Points:    make([]SpectrumPoint, len(freqs)),
	}
	for i := range freqs {
		result.Points[i] = SpectrumPoint{Frequency: freqs[i], Amplitude: fas[i]}
	}

	return result, nil
}

// ComputePGM reads an amplitude file and returns its peak ground motion
func (a *App) ComputePGM(path string, timeDelta float64, unit, targetUnit string) (*PGMResult, error) {
	s, err := a.loadSeismogram(path, timeDelta, unit)
	if err != nil {
		return nil, err
	}

	pgm, err := s.PGM(targetUnit)
	if err != nil {
		return nil, err
	}
	reportUnit := s.Unit()
	if targetUnit != "" {
		reportUnit = targetUnit
	}

	return &PGMResult{
		Unit:        reportUnit,
		GMT:         s.GMT().String(),
		SampleCount: s.SampleCount(),
		PGM:         pgm,
	}, nil
}

// loadSeismogram builds a seismogram from a whitespace-separated amplitude file
func (a *App) loadSeismogram(path string, timeDelta float64, unit string) (*recordings.Seismogram, error) {
	amplitudes, err := readAmplitudes(path)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Amplitude file loaded", logging.Fields{
		"path":       path,
		"samples":    len(amplitudes),
		"time_delta": timeDelta,
		"unit":       unit,
	})

	return recordings.NewSeismogram(timeDelta, amplitudes, unit)
}

// readAmplitudes parses whitespace-separated floats from a file
func readAmplitudes(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read amplitude file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("amplitude file %s holds no samples", path)
	}

	amplitudes := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("amplitude file %s: bad sample %q at index %d: %w", path, field, i, err)
		}
		amplitudes[i] = v
	}

	return amplitudes, nil
}
