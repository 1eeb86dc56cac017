package app

import (
	"context"
	"fmt"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// promptService implements the PromptService interface
type promptService struct {
	promptRepo prompts.PromptRepository
	modelRepo  prompts.ModelRepository
	logger     logger.Logger
}

// NewPromptService creates a new promptService instance
func NewPromptService(promptRepo prompts.PromptRepository, modelRepo prompts.ModelRepository, logger logger.Logger) (prompts.PromptService, error) {
	if promptRepo == nil || modelRepo == nil {
		return nil, fmt.Errorf("prompt and model repositories are required")
	}
	return &promptService{
		promptRepo: promptRepo,
		modelRepo:  modelRepo,
		logger:     logger,
	}, nil
}

// Get returns the system prompt, scales and models in one set.
func (s *promptService) Get(ctx context.Context) (*prompts.PromptSet, error) {
	set := prompts.NewPromptSet()

	systemPrompt, err := s.promptRepo.GetSystemPrompt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}
	set.SystemPrompt = systemPrompt

	scales, err := s.promptRepo.ListScales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scales: %w", err)
	}
	set.Scales = scales

	models, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	set.Models = models

	return set, nil
}

// Save replaces the whole configuration.
func (s *promptService) Save(ctx context.Context, set *prompts.PromptSet) error {
	if set == nil {
		set = prompts.NewPromptSet()
	}
	if err := s.promptRepo.ReplaceAll(ctx, set); err != nil {
		return fmt.Errorf("failed to save prompts: %w", err)
	}
	return nil
}

func (s *promptService) GetSystemPrompt(ctx context.Context) (string, error) {
	prompt, err := s.promptRepo.GetSystemPrompt(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load system prompt: %w", err)
	}
	return prompt, nil
}

func (s *promptService) SaveSystemPrompt(ctx context.Context, prompt string) error {
	if err := s.promptRepo.SaveSystemPrompt(ctx, prompt); err != nil {
		return fmt.Errorf("failed to save system prompt: %w", err)
	}
	return nil
}

func (s *promptService) ListScales(ctx context.Context) ([]document.Document, error) {
	scales, err := s.promptRepo.ListScales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scales: %w", err)
	}
	return scales, nil
}

func (s *promptService) SaveScales(ctx context.Context, scales []document.Document) error {
	if scales == nil {
		scales = []document.Document{}
	}
	if err := s.promptRepo.ReplaceScales(ctx, scales); err != nil {
		return fmt.Errorf("failed to save scales: %w", err)
	}
	return nil
}

// UpdateScale merges patch into the first scale with scaleID.
func (s *promptService) UpdateScale(ctx context.Context, scaleID int64, patch document.Document) error {
	if err := s.promptRepo.MergeScale(ctx, scaleID, patch); err != nil {
		return fmt.Errorf("failed to update scale: %w", err)
	}
	return nil
}
