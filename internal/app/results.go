package app

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quakemetrics/groundmotion/internal/output"
)

// printer formats numbers for table output with digit grouping
var printer = message.NewPrinter(language.English)

// ComponentSummary describes one component of a recording
type ComponentSummary struct {
	Component   string  `json:"component" yaml:"component"`
	Unit        string  `json:"unit" yaml:"unit"`
	GMT         string  `json:"gmt" yaml:"gmt"`
	SampleCount int     `json:"sample_count" yaml:"sample_count"`
	TimeDelta   float64 `json:"time_delta" yaml:"time_delta"`
	Duration    float64 `json:"duration" yaml:"duration"`
	PGM         float64 `json:"pgm" yaml:"pgm"`
}

// RecordingSummary describes a fetched recording, one row per component
type RecordingSummary struct {
	Model        string             `json:"model,omitempty" yaml:"model,omitempty"`
	ComponentSet string             `json:"component_set" yaml:"component_set"`
	Components   []ComponentSummary `json:"components" yaml:"components"`
}

// TableHeader implements output.TableData
func (s *RecordingSummary) TableHeader() []string {
	return []string{"COMPONENT", "UNIT", "GMT", "SAMPLES", "DT (s)", "DURATION (s)", "PGM"}
}

// TableRows implements output.TableData
func (s *RecordingSummary) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Components))
	for _, c := range s.Components {
		rows = append(rows, []string{
			c.Component,
			c.Unit,
			c.GMT,
			printer.Sprintf("%d", c.SampleCount),
			printer.Sprintf("%g", c.TimeDelta),
			printer.Sprintf("%.3f", c.Duration),
			printer.Sprintf("%.6g", c.PGM),
		})
	}
	return rows
}

// SpectrumPoint is one bin of a Fourier amplitude spectrum
type SpectrumPoint struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
}

// SpectrumResult holds a one-sided Fourier amplitude spectrum
type SpectrumResult struct {
	Unit      string          `json:"unit" yaml:"unit"`
	TimeDelta float64         `json:"time_delta" yaml:"time_delta"`
	Points    []SpectrumPoint `json:"points" yaml:"points"`
}

// TableHeader implements output.TableData
func (s *SpectrumResult) TableHeader() []string {
	return []string{"FREQUENCY (Hz)", "FAS (" + s.Unit + "*s)"}
}

// TableRows implements output.TableData
func (s *SpectrumResult) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		rows = append(rows, []string{
			printer.Sprintf("%.6g", p.Frequency),
			printer.Sprintf("%.6g", p.Amplitude),
		})
	}
	return rows
}

// PGMResult holds one peak-ground-motion reading
type PGMResult struct {
	Unit        string  `json:"unit" yaml:"unit"`
	GMT         string  `json:"gmt" yaml:"gmt"`
	SampleCount int     `json:"sample_count" yaml:"sample_count"`
	PGM         float64 `json:"pgm" yaml:"pgm"`
}

// TableHeader implements output.TableData
func (r *PGMResult) TableHeader() []string {
	return []string{"UNIT", "GMT", "SAMPLES", "PGM"}
}

// TableRows implements output.TableData
func (r *PGMResult) TableRows() [][]string {
	return [][]string{{
		r.Unit,
		r.GMT,
		printer.Sprintf("%d", r.SampleCount),
		printer.Sprintf("%.6g", r.PGM),
	}}
}

// interface guards
var (
	_ output.TableData = (*RecordingSummary)(nil)
	_ output.TableData = (*SpectrumResult)(nil)
	_ output.TableData = (*PGMResult)(nil)
)
