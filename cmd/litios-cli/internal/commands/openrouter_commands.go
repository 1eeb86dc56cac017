package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukrserhiy/litios/internal/app"
	"github.com/ukrserhiy/litios/internal/infrastructure/openrouter"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// OpenRouterCommandHandler encapsulates the OpenRouter key check.
type OpenRouterCommandHandler struct {
	logger logger.Logger
}

// NewOpenRouterCommandHandler initializes and returns an OpenRouterCommandHandler instance.
func NewOpenRouterCommandHandler() (*OpenRouterCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &OpenRouterCommandHandler{
		logger: loggerInstance,
	}, nil
}

// TestOpenRouterCmd sends the check completion and prints the raw answer
func (commandHandler *OpenRouterCommandHandler) TestOpenRouterCmd(cmd *cobra.Command, _ []string) error {
	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil {
		return fmt.Errorf("invalid api-key flag: %w", err)
	}
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		return fmt.Errorf("invalid model flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chatClient, err := openrouter.NewClient(&cfg.OpenRouter, commandHandler.logger)
	if err != nil {
		return err
	}

	tester, err := app.NewConnectionTester(chatClient, cfg.OpenRouter.DefaultModel, commandHandler.logger)
	if err != nil {
		return err
	}

	result, err := tester.Test(cmd.Context(), apiKey, model)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(result))
	return nil
}

// InitOpenRouterCommands registers the test-openrouter command
func InitOpenRouterCommands(rootCmd *cobra.Command) error {
	handler, err := NewOpenRouterCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create OpenRouter command handler %w", err)
	}

	var testCmd = &cobra.Command{
		Use:   "test-openrouter",
		Short: "Check an OpenRouter API key with a tiny completion",
		RunE:  handler.TestOpenRouterCmd,
	}
	testCmd.Flags().StringP("api-key", "", "", "OpenRouter API key")
	testCmd.Flags().StringP("model", "", "", "Model id (defaults to openrouter.default_model)")
	_ = testCmd.MarkFlagRequired("api-key")
	rootCmd.AddCommand(testCmd)

	return nil
}
