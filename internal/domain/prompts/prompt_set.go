package prompts

import (
	"errors"

	"github.com/ukrserhiy/litios/internal/domain/document"
)

// ErrScaleNotFound is returned when no scale carries the requested id.
var ErrScaleNotFound = errors.New("scale not found")

// PromptSet is the full prompt configuration.
type PromptSet struct {
	SystemPrompt string
	Scales       []document.Document
	Models       []document.Document
}

// NewPromptSet returns the empty configuration served before anything is saved.
func NewPromptSet() *PromptSet {
	return &PromptSet{
		SystemPrompt: "",
		Scales:       []document.Document{},
		Models:       []document.Document{},
	}
}
