package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List identified plants, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full care card for a saved plant",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a plant from history",
	Args:    cobra.ExactArgs(1),
	RunE:    runHistoryRemove,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderHistory(records))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := findRecord(ctx, store, args[0])
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderReport(rec))

	for _, result := range rec.ToolHistory {
		fmt.Println(ui.RenderToolResult(result))
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := findRecord(ctx, store, args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, rec.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s (%s)\n", rec.DisplayName(), rec.ID)
	return nil
}
