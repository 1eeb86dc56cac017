package prompts

import (
	"context"

	"github.com/ukrserhiy/litios/internal/domain/document"
)

// PromptService defines methods for reading and saving the prompt configuration.
type PromptService interface {
	// Get returns the system prompt, scales and models in one set.
	Get(ctx context.Context) (*PromptSet, error)

	// Save replaces the whole configuration.
	Save(ctx context.Context, set *PromptSet) error

	GetSystemPrompt(ctx context.Context) (string, error)
	SaveSystemPrompt(ctx context.Context, prompt string) error

	ListScales(ctx context.Context) ([]document.Document, error)

	// SaveScales replaces the list of scales.
	SaveScales(ctx context.Context, scales []document.Document) error

	// UpdateScale merges patch into the first scale whose id equals scaleID.
	// It returns ErrScaleNotFound when there is none.
	UpdateScale(ctx context.Context, scaleID int64, patch document.Document) error
}

// ModelService defines methods for managing the AI model catalogue.
type ModelService interface {
	List(ctx context.Context) ([]document.Document, error)

	// Save replaces the catalogue.
	Save(ctx context.Context, models []document.Document) error

	// Add appends a model to the end of the catalogue.
	Add(ctx context.Context, model document.Document) error

	// DeleteByID removes every model with the given id. A missing id is not an error.
	DeleteByID(ctx context.Context, modelID string) error
}

// PromptRepository defines the storage operations for the system prompt and the scales.
// Every method that changes more than one row runs atomically.
type PromptRepository interface {
	GetSystemPrompt(ctx context.Context) (string, error)
	SaveSystemPrompt(ctx context.Context, prompt string) error
	ListScales(ctx context.Context) ([]document.Document, error)
	ReplaceScales(ctx context.Context, scales []document.Document) error
	MergeScale(ctx context.Context, scaleID int64, patch document.Document) error

	// ReplaceAll writes system prompt, scales and models in one transaction.
	ReplaceAll(ctx context.Context, set *PromptSet) error
}

// ModelRepository defines the storage operations for the model catalogue.
type ModelRepository interface {
	List(ctx context.Context) ([]document.Document, error)
	Replace(ctx context.Context, models []document.Document) error
	Append(ctx context.Context, model document.Document) error
	DeleteByID(ctx context.Context, modelID string) error
}
