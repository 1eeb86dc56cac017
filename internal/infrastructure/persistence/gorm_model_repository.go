package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence/models"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

type gormModelRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormModelRepository creates a new GORM-based ModelRepository implementation
func NewGormModelRepository(db *gorm.DB, logger logger.Logger) (prompts.ModelRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormModelRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormModelRepository) List(ctx context.Context) ([]document.Document, error) {
	var rows []*models.AIModelModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch models: %w", err)
	}

	list := make([]document.Document, len(rows))
	for i, row := range rows {
		list[i] = row.ToDomain()
	}
	return list, nil
}

func (r *gormModelRepository) Replace(ctx context.Context, aiModels []document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceModels(tx, aiModels)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced models, count ", len(aiModels))
	return nil
}

func (r *gormModelRepository) Append(ctx context.Context, model document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		position, err := edgePosition(tx, &models.AIModelModel{}, false)
		if err != nil {
			return err
		}

		row := &models.AIModelModel{}
		row.FromDomain(model, position)
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create model: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Added model with id ", model.ID())
	return nil
}

func (r *gormModelRepository) DeleteByID(ctx context.Context, modelID string) error {
	result := r.db.WithContext(ctx).Where("model_id = ?", modelID).Delete(&models.AIModelModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete model: %w", result.Error)
	}

	r.logger.Info("Deleted ", result.RowsAffected, " model(s) with id ", modelID)
	return nil
}
