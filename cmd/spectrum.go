package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quakemetrics/groundmotion/internal/app"
)

var (
	// Spectrum command flags
	spectrumTimeDelta  float64
	spectrumUnit       string
	spectrumTargetUnit string
)

// spectrumCmd represents the spectrum command
var spectrumCmd = &cobra.Command{
	Use:   "spectrum [flags] amplitude-file",
	Short: "Compute the Fourier amplitude spectrum of a seismogram",
	Long: `Compute the one-sided Fourier amplitude spectrum of a seismogram.

The amplitude file holds whitespace-separated samples at a fixed rate.
The spectrum is normalized as |DFT[k]| * dt over the non-negative
frequency half.

Examples:
  groundmotion spectrum --time-delta 0.005 --unit m/s2 record.txt
  groundmotion spectrum --time-delta 0.005 --unit m/s2 --target-unit cm/s2 -o json record.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumCmd.Flags().Float64Var(&spectrumTimeDelta, "time-delta", 0,
		"sample interval in seconds")
	spectrumCmd.Flags().StringVar(&spectrumUnit, "unit", "",
		"unit of the amplitude samples")
	spectrumCmd.Flags().StringVar(&spectrumTargetUnit, "target-unit", "",
		"convert amplitudes to this unit before transforming")

	spectrumCmd.MarkFlagRequired("time-delta")
	spectrumCmd.MarkFlagRequired("unit")
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	application, err := app.NewApp(&app.Context{
		OutputFile:   outputFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	result, err := application.ComputeSpectrum(args[0], spectrumTimeDelta, spectrumUnit, spectrumTargetUnit)
	if err != nil {
		return err
	}

	return application.Output(result)
}
