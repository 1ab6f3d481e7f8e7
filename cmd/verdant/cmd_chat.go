package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"verdant/cmd/verdant/ui"
	"verdant/internal/session"
)

var chatPlain bool

var chatCmd = &cobra.Command{
	Use:   "chat <id> [question]",
	Short: "Chat with the botanist about one of your plants",
	Long: `Opens an interactive conversation grounded in the plant's record:
its species, health score, personality and care numbers travel with
every question. Exchanges are saved to the plant's history.

With a question argument the answer is printed directly instead of
opening the interactive view.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "print replies without the interactive view")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
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

	rec, err := findRecord(ctx, store, args[0])
	if err != nil {
		return err
	}
	sess := session.New(rec, gw, store)

	// One-shot question.
	if len(args) == 2 {
		reply, err := sess.Send(ctx, args[1])
		if err != nil {
			return describeError(err)
		}
		fmt.Println(reply)
		return nil
	}
	if chatPlain {
		return fmt.Errorf("--plain requires a question argument")
	}

	program := tea.NewProgram(ui.NewChatModel(ctx, sess), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
