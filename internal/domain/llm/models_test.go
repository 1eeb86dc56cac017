//go:build unit
// +build unit

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckRequest(t *testing.T) {
	req := NewCheckRequest("anthropic/claude-haiku-4.5")

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"model": "anthropic/claude-haiku-4.5",
		"messages": [
			{"role": "system", "content": "Return only a number from 0 to 10"},
			{"role": "user", "content": "Rate this: Hello world"}
		],
		"max_tokens": 10,
		"temperature": 0.1
	}`, string(raw))
}

func TestUpstreamError(t *testing.T) {
	err := fmt.Errorf("check failed: %w", &UpstreamError{StatusCode: 401, Body: `{"error":"bad key"}`})

	assert.Equal(t, "check failed: HTTP Error 401: Unauthorized", err.Error())

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 401, upstreamErr.StatusCode)
	assert.Equal(t, `{"error":"bad key"}`, upstreamErr.Body)
}
