package app

import (
	"context"
	"fmt"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// modelService implements the ModelService interface
type modelService struct {
	modelRepo prompts.ModelRepository
	logger    logger.Logger
}

// NewModelService creates a new modelService instance
func NewModelService(modelRepo prompts.ModelRepository, logger logger.Logger) (prompts.ModelService, error) {
	if modelRepo == nil {
		return nil, fmt.Errorf("model repository is required")
	}
	return &modelService{
		modelRepo: modelRepo,
		logger:    logger,
	}, nil
}

func (s *modelService) List(ctx context.Context) ([]document.Document, error) {
	models, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	return models, nil
}

func (s *modelService) Save(ctx context.Context, models []document.Document) error {
	if models == nil {
		models = []document.Document{}
	}
	if err := s.modelRepo.Replace(ctx, models); err != nil {
		return fmt.Errorf("failed to save models: %w", err)
	}
	return nil
}

func (s *modelService) Add(ctx context.Context, model document.Document) error {
	if _, ok := model.StringID(); !ok {
		return fmt.Errorf("model id must be a string")
	}
	if err := s.modelRepo.Append(ctx, model); err != nil {
		return fmt.Errorf("failed to add model: %w", err)
	}
	return nil
}

func (s *modelService) DeleteByID(ctx context.Context, modelID string) error {
	if err := s.modelRepo.DeleteByID(ctx, modelID); err != nil {
		return fmt.Errorf("failed to delete model %s: %w", modelID, err)
	}
	return nil
}
