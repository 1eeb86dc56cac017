package models

import (
	"github.com/ukrserhiy/litios/internal/domain/document"
)

// DocumentRow holds the columns shared by every ordered document table.
type DocumentRow struct {
	RowID    uint              `gorm:"primaryKey;autoIncrement"`
	Position int64             `gorm:"not null;index"`
	Payload  document.Document `gorm:"serializer:json;type:text"`
}

// ToDomain returns a copy of the stored document.
func (r *DocumentRow) ToDomain() document.Document {
	if r.Payload == nil {
		return nil
	}
	return r.Payload.Clone()
}

func intIDOf(doc document.Document) *int64 {
	if id, ok := doc.IntID(); ok {
		return &id
	}
	return nil
}

func stringIDOf(doc document.Document) *string {
	if id, ok := doc.StringID(); ok {
		return &id
	}
	return nil
}
