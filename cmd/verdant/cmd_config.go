package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdant/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage verdant configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\nSet your API key there or export GEMINI_API_KEY.\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := "(not set)"
		if cfg.Gateway.APIKey != "" {
			key = "****"
		}
		fmt.Printf("language:  %s\nmodel:     %s\napi key:   %s\ndatabase:  %s\nworkers:   %d\n",
			cfg.LanguageCode(), cfg.Gateway.Model, key, cfg.Store.DatabasePath, cfg.Watch.Workers)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
