package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every settings block; validator caches struct metadata per instance.
var validate = validator.New()

// validateSettings checks the struct tags of s and reports every failing field as
// "validation failed for <name>: [Field: X, Tag: y ...]".
func validateSettings(name string, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed for %s: %v", name, messages)
	}
	return fmt.Errorf("validation error for %s: %w", name, err)
}
