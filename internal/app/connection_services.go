package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukrserhiy/litios/internal/domain/llm"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// connectionTester implements the ConnectionTester interface
type connectionTester struct {
	chatClient   llm.ChatClient
	defaultModel string
	logger       logger.Logger
}

// NewConnectionTester creates a new connectionTester instance
func NewConnectionTester(chatClient llm.ChatClient, defaultModel string, logger logger.Logger) (llm.ConnectionTester, error) {
	if chatClient == nil {
		return nil, fmt.Errorf("chat client is required")
	}
	if defaultModel == "" {
		return nil, fmt.Errorf("default model is required")
	}
	return &connectionTester{
		chatClient:   chatClient,
		defaultModel: defaultModel,
		logger:       logger,
	}, nil
}

// Test sends the check prompts with the caller's key. The key is never logged.
func (s *connectionTester) Test(ctx context.Context, apiKey, model string) (json.RawMessage, error) {
	if strings.TrimSpace(model) == "" {
		model = s.defaultModel
	}

	s.logger.Info("Testing OpenRouter connection with model ", model)

	result, err := s.chatClient.Complete(ctx, apiKey, llm.NewCheckRequest(model))
	if err != nil {
		return nil, fmt.Errorf("connection test failed: %w", err)
	}
	return result, nil
}
