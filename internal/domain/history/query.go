package history

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NewAnalysisQuery returns a query without limit or offset.
func NewAnalysisQuery() *AnalysisQuery {
	return &AnalysisQuery{}
}

// Validate for validating AnalysisQuery struct
func (q *AnalysisQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
