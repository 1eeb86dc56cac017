package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence/models"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

type gormAnalysisRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAnalysisRepository creates a new GORM-based AnalysisRepository implementation
func NewGormAnalysisRepository(db *gorm.DB, logger logger.Logger) (history.AnalysisRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormAnalysisRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAnalysisRepository) List(ctx context.Context, query *history.AnalysisQuery) ([]document.Document, error) {
	if query == nil {
		query = history.NewAnalysisQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AnalysisModel{}).Order(listOrder)
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var rows []*models.AnalysisModel
	if err := dbQuery.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	entries := make([]document.Document, len(rows))
	for i, row := range rows {
		entries[i] = row.ToDomain()
	}
	return entries, nil
}

func (r *gormAnalysisRepository) Replace(ctx context.Context, entries []document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceAnalyses(tx, entries)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced history, count ", len(entries))
	return nil
}

func (r *gormAnalysisRepository) Prepend(ctx context.Context, entry document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		position, err := edgePosition(tx, &models.AnalysisModel{}, true)
		if err != nil {
			return err
		}

		row := &models.AnalysisModel{}
		row.FromDomain(entry, position)
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create analysis: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Added analysis with id ", entry.ID())
	return nil
}

func (r *gormAnalysisRepository) GetByID(ctx context.Context, analysisID int64) (document.Document, error) {
	var row models.AnalysisModel
	if err := r.db.WithContext(ctx).Where("analysis_id = ?", analysisID).Order(listOrder).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("analysis with ID %d: %w", analysisID, history.ErrAnalysisNotFound)
		}
		return nil, fmt.Errorf("failed to fetch analysis: %w", err)
	}
	return row.ToDomain(), nil
}

func (r *gormAnalysisRepository) DeleteByID(ctx context.Context, analysisID int64) error {
	result := r.db.WithContext(ctx).Where("analysis_id = ?", analysisID).Delete(&models.AnalysisModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}

	r.logger.Info("Deleted ", result.RowsAffected, " analysis entries with id ", analysisID)
	return nil
}
