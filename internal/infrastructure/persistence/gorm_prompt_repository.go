package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence/models"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

type gormPromptRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPromptRepository creates a new GORM-based PromptRepository implementation
func NewGormPromptRepository(db *gorm.DB, logger logger.Logger) (prompts.PromptRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormPromptRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPromptRepository) GetSystemPrompt(ctx context.Context) (string, error) {
	return readSetting(r.db.WithContext(ctx), systemPromptKey)
}

func (r *gormPromptRepository) SaveSystemPrompt(ctx context.Context, prompt string) error {
	if err := writeSetting(r.db.WithContext(ctx), systemPromptKey, prompt); err != nil {
		return err
	}

	r.logger.Info("Saved system prompt of length ", len(prompt))
	return nil
}

func (r *gormPromptRepository) ListScales(ctx context.Context) ([]document.Document, error) {
	var rows []*models.ScaleModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scales: %w", err)
	}

	scales := make([]document.Document, len(rows))
	for i, row := range rows {
		scales[i] = row.ToDomain()
	}
	return scales, nil
}

func (r *gormPromptRepository) ReplaceScales(ctx context.Context, scales []document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceScales(tx, scales)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced scales, count ", len(scales))
	return nil
}

func (r *gormPromptRepository) MergeScale(ctx context.Context, scaleID int64, patch document.Document) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.ScaleModel
		if err := tx.Where("scale_id = ?", scaleID).Order(listOrder).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("scale with ID %d: %w", scaleID, prompts.ErrScaleNotFound)
			}
			return fmt.Errorf("failed to fetch scale: %w", err)
		}

		row.FromDomain(row.Payload.Merge(patch), row.Position)
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to update scale: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated scale with id ", scaleID)
	return nil
}

func (r *gormPromptRepository) ReplaceAll(ctx context.Context, set *prompts.PromptSet) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := writeSetting(tx, systemPromptKey, set.SystemPrompt); err != nil {
			return err
		}
		if err := replaceScales(tx, set.Scales); err != nil {
			return err
		}
		return replaceModels(tx, set.Models)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced prompt configuration with ", len(set.Scales), " scales and ", len(set.Models), " models")
	return nil
}
