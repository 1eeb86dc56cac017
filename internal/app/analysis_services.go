package app

import (
	"context"
	"fmt"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// analysisService implements the AnalysisService interface
type analysisService struct {
	analysisRepo history.AnalysisRepository
	logger       logger.Logger
}

// NewAnalysisService creates a new analysisService instance
func NewAnalysisService(analysisRepo history.AnalysisRepository, logger logger.Logger) (history.AnalysisService, error) {
	if analysisRepo == nil {
		return nil, fmt.Errorf("analysis repository is required")
	}
	return &analysisService{
		analysisRepo: analysisRepo,
		logger:       logger,
	}, nil
}

func (s *analysisService) List(ctx context.Context, query *history.AnalysisQuery) ([]document.Document, error) {
	entries, err := s.analysisRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

func (s *analysisService) ReplaceAll(ctx context.Context, entries []document.Document) error {
	if entries == nil {
		entries = []document.Document{}
	}
	if err := s.analysisRepo.Replace(ctx, entries); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Add stores entry in front of the history and echoes its id.
func (s *analysisService) Add(ctx context.Context, entry document.Document) (interface{}, error) {
	if err := s.analysisRepo.Prepend(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add analysis: %w", err)
	}
	return entry.ID(), nil
}

func (s *analysisService) GetByID(ctx context.Context, analysisID int64) (document.Document, error) {
	entry, err := s.analysisRepo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return entry, nil
}

func (s *analysisService) DeleteByID(ctx context.Context, analysisID int64) error {
	if err := s.analysisRepo.DeleteByID(ctx, analysisID); err != nil {
		return fmt.Errorf("failed to delete analysis %d: %w", analysisID, err)
	}
	return nil
}
