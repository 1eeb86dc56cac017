package v1

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
)

// ErrorResponse is the body of every plain error answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool `json:"success"`
}

// AddAnalysisResponse acknowledges a history insert and echoes the entry id, which may be null
type AddAnalysisResponse struct {
	Success bool        `json:"success"`
	ID      interface{} `json:"id"`
}

// PromptSetDTO is the full prompt configuration
type PromptSetDTO struct {
	SystemPrompt string              `json:"systemPrompt"`
	Scales       []document.Document `json:"scales"`
	Models       []document.Document `json:"models"`
}

// NewPromptSetDTO converts a domain set, turning nil lists into empty ones.
func NewPromptSetDTO(set *prompts.PromptSet) PromptSetDTO {
	return PromptSetDTO{
		SystemPrompt: set.SystemPrompt,
		Scales:       orEmpty(set.Scales),
		Models:       orEmpty(set.Models),
	}
}

// ToDomain converts the DTO into a domain set.
func (d PromptSetDTO) ToDomain() *prompts.PromptSet {
	return &prompts.PromptSet{
		SystemPrompt: d.SystemPrompt,
		Scales:       orEmpty(d.Scales),
		Models:       orEmpty(d.Models),
	}
}

// SystemPromptDTO carries the system prompt alone
type SystemPromptDTO struct {
	SystemPrompt string `json:"systemPrompt"`
}

// ScalesDTO carries the list of scales
type ScalesDTO struct {
	Scales []document.Document `json:"scales"`
}

// ModelsDTO carries the model catalogue
type ModelsDTO struct {
	Models []document.Document `json:"models"`
}

// OpenRouterTestRequest asks the server to check OpenRouter with the caller's key
type OpenRouterTestRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
	Model  string `json:"model"`
}

// Validate for validating OpenRouterTestRequest struct
func (r *OpenRouterTestRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// OpenRouterTestResponse wraps the raw upstream completion
type OpenRouterTestResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
}

// OpenRouterFailureResponse reports a failed check. Body is set only for upstream HTTP errors.
type OpenRouterFailureResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Body    *string `json:"body,omitempty"`
}

// HealthResponse is the liveness answer
type HealthResponse struct {
	Status string `json:"status"`
}

func orEmpty(docs []document.Document) []document.Document {
	if docs == nil {
		return []document.Document{}
	}
	return docs
}
