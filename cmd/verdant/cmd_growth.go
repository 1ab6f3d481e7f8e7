package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/imaging"
	"verdant/internal/session"
)

var growthCmd = &cobra.Command{
	Use:   "growth <id> <photo>",
	Short: "Add a new photo to a plant's growth timeline",
	Long: `Compares the new photo against the plant's most recent one and
appends the model's progress assessment (improving or declining, what
changed, next milestone) to the growth timeline.`,
	Args: cobra.ExactArgs(2),
	RunE: runGrowth,
}

func init() {
	rootCmd.AddCommand(growthCmd)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	dataURL, err := imaging.NormalizeFile(args[1])
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

	rec, err := findRecord(ctx, store, args[0])
	if err != nil {
		return err
	}

	callCtx, cancelCall := context.WithTimeout(ctx, cfg.GatewayTimeout())
	defer cancelCall()

	update, err := session.New(rec, gw, store).AddGrowthUpdate(callCtx, dataURL)
	if err != nil {
		return describeError(err)
	}

	fmt.Printf("%s %s\n%s\n",
		ui.TitleStyle.Render(rec.DisplayName()),
		ui.SubtitleStyle.Render("["+update.HealthStatus+"]"),
		update.GrowthAnalysis)
	return nil
}
