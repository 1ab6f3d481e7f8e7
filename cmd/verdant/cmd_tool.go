package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/imaging"
	"verdant/internal/session"
	"verdant/internal/tools"
)

var toolPlantID string

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Run specialist analyses: soil, pests, pruning, toxicity and more",
}

var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available analysis tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.RenderToolCatalog(tools.Catalog))
		return nil
	},
}

var toolRunCmd = &cobra.Command{
	Use:   "run <tool-id> <photo>",
	Short: "Analyze a photo with one tool",
	Long: `Runs a single specialist analysis. Each tool expects a particular
framing; run "verdant tool info <tool-id>" for the camera instruction.
With --plant the result is appended to that plant's record.`,
	Args: cobra.ExactArgs(2),
	RunE: runTool,
}

var toolInfoCmd = &cobra.Command{
	Use:   "info <tool-id>",
	Short: "Show what a tool does and how to frame the photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, ok := tools.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown tool %q; run: verdant tool list", args[0])
		}
		fmt.Printf("%s  %s\n%s\n\n%s %s\n",
			ui.TitleStyle.Render(tool.Name),
			ui.MutedStyle.Render("("+string(tool.Category)+")"),
			tool.Description,
			ui.LabelStyle.Render("Camera:"),
			tool.CameraInstruction)
		return nil
	},
}

func init() {
	toolRunCmd.Flags().StringVar(&toolPlantID, "plant", "", "attach the result to this plant's record")
	toolCmd.AddCommand(toolListCmd)
	toolCmd.AddCommand(toolRunCmd)
	toolCmd.AddCommand(toolInfoCmd)
	rootCmd.AddCommand(toolCmd)
}

func runTool(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	tool, ok := tools.ByID(args[0])
	if !ok {
		return fmt.Errorf("unknown tool %q; run: verdant tool list", args[0])
	}

	dataURL, err := imaging.NormalizeFile(args[1])
	if err != nil {
		return err
	}

	gw, err := newGateway(ctx)
	if err != nil {
		return err
	}

	callCtx, cancelCall := context.WithTimeout(ctx, cfg.GatewayTimeout())
	defer cancelCall()

	// Standalone run: analyze and print without touching history.
	if toolPlantID == "" {
		result, err := gw.AnalyzeTool(callCtx, dataURL, tool, language())
		if err != nil {
			return describeError(err)
		}
		fmt.Println(ui.RenderToolResult(result))
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := findRecord(ctx, store, toolPlantID)
	if err != nil {
		return err
	}
	result, err := session.New(rec, gw, store).RunTool(callCtx, tool, dataURL)
	if err != nil {
		return describeError(err)
	}
	fmt.Println(ui.RenderToolResult(result))
	fmt.Println(ui.MutedStyle.Render("Attached to " + rec.DisplayName()))
	return nil
}
