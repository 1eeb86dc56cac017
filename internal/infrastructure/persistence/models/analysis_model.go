package models

import (
	"time"

	"github.com/ukrserhiy/litios/internal/domain/document"
)

// AnalysisModel is the GORM database model for an analysis history entry
type AnalysisModel struct {
	DocumentRow
	AnalysisID *int64 `gorm:"index"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (AnalysisModel) TableName() string {
	return "analyses"
}

// FromDomain fills the model from an analysis document at position.
func (m *AnalysisModel) FromDomain(doc document.Document, position int64) {
	m.Position = position
	m.Payload = doc
	m.AnalysisID = intIDOf(doc)
}
