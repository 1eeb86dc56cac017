// Package openrouter implements llm.ChatClient against the OpenRouter
// chat completions API. Transient failures (rate limiting, gateway errors,
// broken connections) are retried with exponential backoff.
package openrouter
