// verdant is a plant companion for the terminal: point it at a photo
// and it identifies the species, scores the plant's health, prescribes
// care, and keeps a growing record of every plant it has met.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"verdant/internal/config"
	"verdant/internal/gateway"
	"verdant/internal/history"
	"verdant/internal/logging"
	"verdant/internal/types"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiKey     string
	model      string
	langFlag   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "verdant - AI botanist in your terminal",
	Long: `verdant identifies plants from photos using Gemini, diagnoses their
health, prescribes exact care (water in ml, light, soil), and tracks
each plant over time: growth timelines, expert chat, and a toolbox of
specialist analyses.

Records live in a local history capped at the 50 most recent plants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := logging.Init(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if apiKey != "" {
			cfg.Gateway.APIKey = apiKey
		}
		if model != "" {
			cfg.Gateway.Model = model
		}
		if langFlag != "" {
			cfg.Language = langFlag
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.verdant/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Gemini model name")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "output language: en or bn")
}

// signalContext is the base context for every command: Ctrl-C cancels
// in-flight gateway calls instead of killing the process mid-write.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newGateway builds the Gemini gateway from resolved config.
func newGateway(ctx context.Context) (*gateway.Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return gateway.New(ctx, cfg.Gateway.APIKey, cfg.Gateway.Model)
}

// openStore opens the history database from resolved config.
func openStore() (*history.Store, error) {
	return history.Open(cfg.Store.DatabasePath)
}

// describeError swaps connectivity failures for a plain message; other
// errors pass through untouched.
func describeError(err error) error {
	if gateway.Offline(err) {
		return fmt.Errorf("you appear to be offline — verdant needs a connection to reach Gemini")
	}
	return err
}

// language returns the record language for new operations.
func language() types.Language {
	return cfg.LanguageCode()
}

// findRecord resolves an ID or unique ID prefix against the history.
func findRecord(ctx context.Context, store *history.Store, id string) (*types.Identification, error) {
	if rec, err := store.Get(ctx, id); err == nil {
		return rec, nil
	}

	records, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	var match *types.Identification
	for i := range records {
		if len(id) >= 4 && len(records[i].ID) >= len(id) && records[i].ID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", id)
			}
			match = &records[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no plant with id %q; run: verdant history", id)
	}
	return match, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
