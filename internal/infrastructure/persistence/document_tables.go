package persistence

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence/models"
)

const systemPromptKey = "system_prompt"

// listOrder is the order every document list is read in.
const listOrder = "position asc, row_id asc"

// insertBatchSize keeps multi-row inserts under SQLite's bound-parameter limit.
const insertBatchSize = 500

func readSetting(tx *gorm.DB, key string) (string, error) {
	var settings []models.PromptSettingModel
	if err := tx.Where("setting_key = ?", key).Limit(1).Find(&settings).Error; err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if len(settings) == 0 {
		return "", nil
	}
	return settings[0].Value, nil
}

func writeSetting(tx *gorm.DB, key, value string) error {
	setting := &models.PromptSettingModel{Key: key, Value: value}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func deleteAll(tx *gorm.DB, model interface{}) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
}

func replaceScales(tx *gorm.DB, scales []document.Document) error {
	if err := deleteAll(tx, &models.ScaleModel{}); err != nil {
		return fmt.Errorf("failed to clear scales: %w", err)
	}
	if len(scales) == 0 {
		return nil
	}

	rows := make([]*models.ScaleModel, len(scales))
	for i, scale := range scales {
		rows[i] = &models.ScaleModel{}
		rows[i].FromDomain(scale, int64(i))
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert scales: %w", err)
	}
	return nil
}

func replaceModels(tx *gorm.DB, aiModels []document.Document) error {
	if err := deleteAll(tx, &models.AIModelModel{}); err != nil {
		return fmt.Errorf("failed to clear models: %w", err)
	}
	if len(aiModels) == 0 {
		return nil
	}

	rows := make([]*models.AIModelModel, len(aiModels))
	for i, m := range aiModels {
		rows[i] = &models.AIModelModel{}
		rows[i].FromDomain(m, int64(i))
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert models: %w", err)
	}
	return nil
}

func replaceAnalyses(tx *gorm.DB, entries []document.Document) error {
	if err := deleteAll(tx, &models.AnalysisModel{}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	rows := make([]*models.AnalysisModel, len(entries))
	for i, entry := range entries {
		rows[i] = &models.AnalysisModel{}
		rows[i].FromDomain(entry, int64(i))
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	return nil
}

// edgePosition returns the position just before the first row (front=true) or after the last one.
func edgePosition(tx *gorm.DB, model interface{}, front bool) (int64, error) {
	expr := "COALESCE(MAX(position), -1) + 1"
	if front {
		expr = "COALESCE(MIN(position), 1) - 1"
	}

	var position int64
	if err := tx.Model(model).Select(expr).Scan(&position).Error; err != nil {
		return 0, fmt.Errorf("failed to compute position: %w", err)
	}
	return position, nil
}
