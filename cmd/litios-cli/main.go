// Package main is the entry point for the litios-cli application.
// It registers the data and OpenRouter sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ukrserhiy/litios/cmd/litios-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "litios-cli",
		Short: "Maintenance CLI for the LITI analysis service",
		Long: `litios-cli manages the data behind the LITI REST service.
It migrates the database schema, imports and exports the legacy
prompts.json and history.json files, and checks an OpenRouter key.

Configuration is read the same way the REST service reads it:
the YAML file given by --config or CONFIG_PATH, overridden by LITIOS_* variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration (defaults to CONFIG_PATH)")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDataCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize data commands: %w", err)
	}

	if err := commands.InitOpenRouterCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize OpenRouter commands: %w", err)
	}

	return nil
}
