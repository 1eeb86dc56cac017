package config

import "time"

// OpenRouter defaults
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "anthropic/claude-haiku-4.5"
	DefaultOpenRouterTimeout = 30 * time.Second
)

// OpenRouterSettings holds the settings for calls to the OpenRouter chat completions API.
// The API key is not part of it: the browser supplies it per request.
type OpenRouterSettings struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	DefaultModel string        `mapstructure:"default_model" validate:"required"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"required,min=1s"`
	MaxRetries   int           `mapstructure:"max_retries" validate:"min=0,max=10"`
	SiteURL      string        `mapstructure:"site_url" validate:"omitempty,url"`
	SiteName     string        `mapstructure:"site_name"`
}

// Validate checks that all fields in OpenRouterSettings are valid
func (s *OpenRouterSettings) Validate() error {
	return validateSettings("OpenRouterSettings", s)
}
