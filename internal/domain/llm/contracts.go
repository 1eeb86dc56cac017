package llm

import (
	"context"
	"encoding/json"
)

// ChatClient sends chat completion requests on behalf of a caller-supplied key.
type ChatClient interface {
	// Complete returns the provider's raw JSON answer. A non-2xx answer is an *UpstreamError.
	Complete(ctx context.Context, apiKey string, req *ChatRequest) (json.RawMessage, error)
}

// ConnectionTester checks that an API key can reach a model.
type ConnectionTester interface {
	// Test sends the check prompts to model (the default model when empty).
	Test(ctx context.Context, apiKey, model string) (json.RawMessage, error)
}
