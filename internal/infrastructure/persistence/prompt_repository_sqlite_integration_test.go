//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/config"
)

func TestPromptRepository_SystemPrompt(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	prompt, err := tc.PromptRepo.GetSystemPrompt(ctx)
	require.NoError(t, err)
	assert.Empty(t, prompt)

	require.NoError(t, tc.PromptRepo.SaveSystemPrompt(ctx, "Ты — HR-аналитик"))
	require.NoError(t, tc.PromptRepo.SaveSystemPrompt(ctx, "Вы — HR-аналитик"))

	prompt, err = tc.PromptRepo.GetSystemPrompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Вы — HR-аналитик", prompt)
}

func TestPromptRepository_ReplaceScalesKeepsOrder(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	first := []document.Document{
		{"id": float64(3), "name": "Openness"},
		{"id": float64(1), "name": "Empathy"},
	}
	require.NoError(t, tc.PromptRepo.ReplaceScales(ctx, first))

	second := []document.Document{
		{"id": float64(2), "name": "Stress"},
		{"name": "no id"},
		{"id": float64(1), "name": "Empathy"},
	}
	require.NoError(t, tc.PromptRepo.ReplaceScales(ctx, second))

	scales, err := tc.PromptRepo.ListScales(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, scales)
}

func TestPromptRepository_MergeScale(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, tc.PromptRepo.ReplaceScales(ctx, []document.Document{
		{"id": float64(1), "name": "Empathy", "prompt": "old"},
		{"id": float64(1), "name": "Duplicate", "prompt": "untouched"},
	}))

	err := tc.PromptRepo.MergeScale(ctx, 1, document.Document{"prompt": "new"})
	require.NoError(t, err)

	scales, err := tc.PromptRepo.ListScales(ctx)
	require.NoError(t, err)
	require.Len(t, scales, 2)
	assert.Equal(t, document.Document{"id": float64(1), "name": "Empathy", "prompt": "new"}, scales[0])
	assert.Equal(t, "untouched", scales[1]["prompt"])
}

func TestPromptRepository_MergeScaleNotFound(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.PromptRepo.MergeScale(ctx, 99, document.Document{"prompt": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, prompts.ErrScaleNotFound))
}

func TestPromptRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	set := &prompts.PromptSet{
		SystemPrompt: "system",
		Scales:       []document.Document{{"id": float64(1)}},
		Models:       []document.Document{{"id": "anthropic/claude-haiku-4.5"}},
	}
	require.NoError(t, tc.PromptRepo.ReplaceAll(ctx, set))

	prompt, err := tc.PromptRepo.GetSystemPrompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "system", prompt)

	scales, err := tc.PromptRepo.ListScales(ctx)
	require.NoError(t, err)
	assert.Equal(t, set.Scales, scales)

	models, err := tc.ModelRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, set.Models, models)
}
