package history

import (
	"context"
	"errors"

	"github.com/ukrserhiy/litios/internal/domain/document"
)

// ErrAnalysisNotFound is returned when no analysis carries the requested id.
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisQuery limits a history listing. Zero values mean no limit and no offset.
type AnalysisQuery struct {
	Limit  int `validate:"min=0"`
	Offset int `validate:"min=0"`
}

// AnalysisService defines methods for managing the analysis history.
type AnalysisService interface {
	// List returns analyses newest first.
	List(ctx context.Context, query *AnalysisQuery) ([]document.Document, error)

	// ReplaceAll overwrites the history with entries, keeping their order.
	ReplaceAll(ctx context.Context, entries []document.Document) error

	// Add puts entry at the front of the history and returns its id, which may be nil.
	Add(ctx context.Context, entry document.Document) (interface{}, error)

	// GetByID returns the first analysis with the id or ErrAnalysisNotFound.
	GetByID(ctx context.Context, analysisID int64) (document.Document, error)

	// DeleteByID removes every analysis with the id. A missing id is not an error.
	DeleteByID(ctx context.Context, analysisID int64) error
}

// AnalysisRepository defines the storage operations for the history.
type AnalysisRepository interface {
	List(ctx context.Context, query *AnalysisQuery) ([]document.Document, error)
	Replace(ctx context.Context, entries []document.Document) error
	Prepend(ctx context.Context, entry document.Document) error
	GetByID(ctx context.Context, analysisID int64) (document.Document, error)
	DeleteByID(ctx context.Context, analysisID int64) error
}
