package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quakemetrics/groundmotion/internal/app"
	"github.com/quakemetrics/groundmotion/pkg/ground/recordings"
	"github.com/quakemetrics/groundmotion/pkg/ground/units"
	"github.com/quakemetrics/groundmotion/pkg/syngine"
)

var (
	// Fetch command flags
	fetchSourceLon     float64
	fetchSourceLat     float64
	fetchSourceDepth   float64
	fetchTensor        []float64
	fetchReceiverLon   float64
	fetchReceiverLat   float64
	fetchModel         string
	fetchSourceWidth   int
	fetchDuration      float64
	fetchGMT           string
	fetchComponents    string
	fetchRotateAzimuth float64
	fetchTargetUnit    string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a synthetic recording from the synthetics service",
	Long: `Fetch a synthetic seismogram recording for a source/receiver pair.

The source is described by its position, depth and the six independent
moment tensor components (rr, tt, pp, rt, tp, pr). The service computes
the traces from precalculated Green's function databases and returns one
trace per requested component.

Examples:
  # Displacement recording in the ZRT frame
  groundmotion fetch --source-lon 30.0 --source-lat 40.0 --source-depth 100000 \
    --tensor 1e19,1e19,1e19,0,0,0 --receiver-lon 4.5 --receiver-lat 50.8

  # Velocity recording in ZNE, rotated into ZRT at azimuth 30
  groundmotion fetch --source-lon 30.0 --source-lat 40.0 --source-depth 100000 \
    --tensor 1e19,1e19,1e19,0,0,0 --receiver-lon 4.5 --receiver-lat 50.8 \
    --gmt velocity --components ZNE --rotate-azimuth 30`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Float64Var(&fetchSourceLon, "source-lon", 0, "source longitude in degrees")
	fetchCmd.Flags().Float64Var(&fetchSourceLat, "source-lat", 0, "source latitude in degrees")
	fetchCmd.Flags().Float64Var(&fetchSourceDepth, "source-depth", 0, "source depth in meters")
	fetchCmd.Flags().Float64SliceVar(&fetchTensor, "tensor", nil,
		"moment tensor components rr,tt,pp,rt,tp,pr")
	fetchCmd.Flags().Float64Var(&fetchReceiverLon, "receiver-lon", 0, "receiver longitude in degrees")
	fetchCmd.Flags().Float64Var(&fetchReceiverLat, "receiver-lat", 0, "receiver latitude in degrees")
	fetchCmd.Flags().StringVar(&fetchModel, "model", "",
		"Green's function database (default from config)")
	fetchCmd.Flags().IntVar(&fetchSourceWidth, "stf", 0,
		"source time function smoothing width")
	fetchCmd.Flags().Float64Var(&fetchDuration, "duration", 0,
		"trace duration override in seconds")
	fetchCmd.Flags().StringVar(&fetchGMT, "gmt", "displacement",
		"ground-motion type (displacement, velocity, acceleration)")
	fetchCmd.Flags().StringVar(&fetchComponents, "components", "ZRT",
		"component set (ZRT or ZNE)")
	fetchCmd.Flags().Float64Var(&fetchRotateAzimuth, "rotate-azimuth", -1,
		"rotate into the complementary frame at this azimuth in degrees")
	fetchCmd.Flags().StringVar(&fetchTargetUnit, "target-unit", "",
		"convert reported peaks to this unit")

	fetchCmd.MarkFlagRequired("source-lon")
	fetchCmd.MarkFlagRequired("source-lat")
	fetchCmd.MarkFlagRequired("source-depth")
	fetchCmd.MarkFlagRequired("tensor")
	fetchCmd.MarkFlagRequired("receiver-lon")
	fetchCmd.MarkFlagRequired("receiver-lat")
}

func runFetch(cmd *cobra.Command, args []string) error {
	gmt, err := units.ParseKind(fetchGMT)
	if err != nil {
		return err
	}

	if len(fetchTensor) != 6 {
		return fmt.Errorf("--tensor requires exactly six components (rr,tt,pp,rt,tp,pr), got %d", len(fetchTensor))
	}

	application, err := app.NewApp(&app.Context{
		OutputFile:   outputFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	opts := &app.FetchOptions{
		Request: &syngine.Request{
			SourceLon:   fetchSourceLon,
			SourceLat:   fetchSourceLat,
			SourceDepth: fetchSourceDepth,
			Tensor: syngine.MomentTensor{
				RR: fetchTensor[0],
				TT: fetchTensor[1],
				PP: fetchTensor[2],
				RT: fetchTensor[3],
				TP: fetchTensor[4],
				PR: fetchTensor[5],
			},
			ReceiverLon: fetchReceiverLon,
			ReceiverLat: fetchReceiverLat,
			Model:       fetchModel,
			SourceWidth: fetchSourceWidth,
			Duration:    fetchDuration,
			GMT:         gmt,
			Components:  recordings.ComponentSet(fetchComponents),
		},
		TargetUnit: fetchTargetUnit,
	}
	if cmd.Flags().Changed("rotate-azimuth") {
		azimuth := fetchRotateAzimuth
		opts.RotateAzimuth = &azimuth
	}

	summary, err := application.FetchRecording(context.Background(), opts)
	if err != nil {
		return err
	}

	return application.Output(summary)
}
