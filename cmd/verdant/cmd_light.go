package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/light"
)

var (
	lightFollow   bool
	lightInterval time.Duration
)

var lightCmd = &cobra.Command{
	Use:   "light <photo>",
	Short: "Estimate ambient light from a photo",
	Long: `Estimates a relative lux index from a photo's brightness and says
which plants suit the spot. The number is a relative metric for
comparing locations, not a calibrated lux measurement.

With --follow the file is re-read on an interval, so pointing it at a
webcam snapshot that refreshes in place gives a live meter.`,
	Args: cobra.ExactArgs(1),
	RunE: runLight,
}

func init() {
	lightCmd.Flags().BoolVar(&lightFollow, "follow", false, "keep sampling the file until interrupted")
	lightCmd.Flags().DurationVar(&lightInterval, "interval", light.DefaultInterval, "sampling interval with --follow")
	rootCmd.AddCommand(lightCmd)
}

func runLight(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	source := fileFrameSource(args[0])

	if !lightFollow {
		frame, err := source.Frame(ctx)
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderReading(light.Estimate(frame)))
		return nil
	}

	meter := light.NewMeter(source, lightInterval)
	readings, err := meter.Start(ctx)
	if err != nil {
		return err
	}
	defer meter.Stop()

	for reading := range readings {
		fmt.Println(ui.RenderReading(reading))
	}
	return meter.Err()
}

// fileFrameSource re-decodes the file on every sample.
func fileFrameSource(path string) light.FrameSource {
	return light.FrameSourceFunc(func(ctx context.Context) (image.Image, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	})
}
