package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/imaging"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <photo>",
	Short: "Identify a plant from a photo and save it to your history",
	Long: `Normalizes the photo (downscaled to 1920px, re-encoded as JPEG),
sends it to Gemini for identification, and prints the full care card:
species, health score, watering in ml, diagnosis, and a 3-day rescue
plan when the plant is in trouble. The record is saved to history.`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	dataURL, err := imaging.NormalizeFile(args[0])
	if err != nil {
		return err
	}

	gw, err := newGateway(ctx)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	callCtx, cancelCall := context.WithTimeout(ctx, cfg.GatewayTimeout())
	defer cancelCall()

	rec, err := gw.Identify(callCtx, dataURL, language())
	if err != nil {
		return describeError(err)
	}
	if err := store.Append(ctx, rec); err != nil {
		return err
	}

	fmt.Println(ui.RenderReport(rec))
	fmt.Println(ui.MutedStyle.Render("Saved as " + rec.ID))
	return nil
}
