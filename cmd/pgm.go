package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quakemetrics/groundmotion/internal/app"
)

var (
	// PGM command flags
	pgmTimeDelta  float64
	pgmUnit       string
	pgmTargetUnit string
)

// pgmCmd represents the pgm command
var pgmCmd = &cobra.Command{
	Use:   "pgm [flags] amplitude-file",
	Short: "Extract the peak ground motion of a seismogram",
	Long: `Extract the peak ground motion, the maximum absolute amplitude, of a
seismogram read from a whitespace-separated amplitude file.

Examples:
  groundmotion pgm --time-delta 0.005 --unit m/s2 record.txt
  groundmotion pgm --time-delta 0.005 --unit m/s2 --target-unit g record.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPGM,
}

func init() {
	rootCmd.AddCommand(pgmCmd)

	pgmCmd.Flags().Float64Var(&pgmTimeDelta, "time-delta", 0,
		"sample interval in seconds")
	pgmCmd.Flags().StringVar(&pgmUnit, "unit", "",
		"unit of the amplitude samples")
	pgmCmd.Flags().StringVar(&pgmTargetUnit, "target-unit", "",
		"convert the peak to this unit")

	pgmCmd.MarkFlagRequired("time-delta")
	pgmCmd.MarkFlagRequired("unit")
}

func runPGM(cmd *cobra.Command, args []string) error {
	application, err := app.NewApp(&app.Context{
		OutputFile:   outputFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	result, err := application.ComputePGM(args[0], pgmTimeDelta, pgmUnit, pgmTargetUnit)
	if err != nil {
		return err
	}

	return application.Output(result)
}
