package models

import (
	"github.com/ukrserhiy/litios/internal/domain/document"
)

// AIModelModel is the GORM database model for an entry of the AI model catalogue
type AIModelModel struct {
	DocumentRow
	ModelID *string `gorm:"index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (AIModelModel) TableName() string {
	return "ai_models"
}

// FromDomain fills the model from a model document at position.
func (m *AIModelModel) FromDomain(doc document.Document, position int64) {
	m.Position = position
	m.Payload = doc
	m.ModelID = stringIDOf(doc)
}
