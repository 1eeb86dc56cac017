package llm

import (
	"fmt"
	"net/http"
)

// Fixed prompts used to check that a key and model work.
const (
	CheckSystemPrompt = "Return only a number from 0 to 10"
	CheckUserPrompt   = "Rate this: Hello world"
	CheckMaxTokens    = 10
	CheckTemperature  = 0.1
)

// Message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is a single message of a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat completion call.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// NewCheckRequest builds the fixed connectivity check for model.
func NewCheckRequest(model string) *ChatRequest {
	return &ChatRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: CheckSystemPrompt},
			{Role: RoleUser, Content: CheckUserPrompt},
		},
		MaxTokens:   CheckMaxTokens,
		Temperature: CheckTemperature,
	}
}

// UpstreamError reports a non-2xx answer from the model provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
