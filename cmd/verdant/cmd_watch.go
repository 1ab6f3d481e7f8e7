package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/types"
	"verdant/internal/watch"
)

var watchWorkers int

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a folder and identify every photo dropped into it",
	Long: `Runs until interrupted. Every image file that lands in the folder is
normalized, identified, and saved to history. Point a phone sync folder
or camera upload directory at it to catalog plants hands-free.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchWorkers, "workers", 0, "concurrent identifications (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	gw, err := newGateway(ctx)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	workers := watchWorkers
	if workers <= 0 {
		workers = cfg.Watch.Workers
	}

	w := watch.New(watch.Config{
		Dir:        args[0],
		Language:   language(),
		Workers:    workers,
		Identifier: gw,
		Appender:   store,
		OnIdentified: func(rec *types.Identification) {
			fmt.Printf("%s %s  %s\n",
				ui.TitleStyle.Render(rec.DisplayName()),
				ui.ScoreStyle(rec.HealthScore).Render(fmt.Sprintf("%d/100", rec.HealthScore)),
				ui.MutedStyle.Render(rec.ID))
		},
	})

	fmt.Println(ui.MutedStyle.Render("Watching " + args[0] + " — drop photos to identify, Ctrl-C to stop"))
	return w.Run(ctx)
}
