package models

import (
	"github.com/ukrserhiy/litios/internal/domain/document"
)

// ScaleModel is the GORM database model for a scale
type ScaleModel struct {
	DocumentRow
	ScaleID *int64 `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ScaleModel) TableName() string {
	return "scales"
}

// FromDomain fills the model from a scale document at position.
func (m *ScaleModel) FromDomain(doc document.Document, position int64) {
	m.Position = position
	m.Payload = doc
	m.ScaleID = intIDOf(doc)
}
