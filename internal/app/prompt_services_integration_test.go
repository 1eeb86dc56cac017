//go:build integration
// +build integration

package app

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

func TestPromptService_EmptyStore(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	set, err := svc.PromptService.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prompts.NewPromptSet(), set)
}

func TestPromptService_PartialSavesKeepOtherParts(t *testing.T) {
	ctx := context.Background()
	svc := SetupTestServices(t, config.SqliteDbType)

	require.NoError(t, svc.PromptService.Save(ctx, &prompts.PromptSet{
		SystemPrompt: "initial",
		Scales:       []document.Document{{"id": float64(1), "name": "Empathy"}},
		Models:       []document.Document{{"id": "openai/gpt-4o"}},
	}))

	require.NoError(t, svc.PromptService.SaveSystemPrompt(ctx, "updated"))
	require.NoError(t, svc.PromptService.SaveScales(ctx, []document.Document{{"id": float64(2), "name": "Stress"}}))

	set, err := svc.PromptService.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "updated", set.SystemPrompt)
	assert.Equal(t, []document.Document{{"id": float64(2), "name": "Stress"}}, set.Scales)
	assert.Equal(t, []document.Document{{"id": "openai/gpt-4o"}}, set.Models)
}

func TestPromptService_SaveScalesNilClearsList(t *testing.T) {
	ctx := context.Background()
	svc := SetupTestServices(t, config.SqliteDbType)

	require.NoError(t, svc.PromptService.SaveScales(ctx, []document.Document{{"id": float64(1)}}))
	require.NoError(t, svc.PromptService.SaveScales(ctx, nil))

	scales, err := svc.PromptService.ListScales(ctx)
	require.NoError(t, err)
	assert.Empty(t, scales)
}

func TestPromptService_UpdateScale(t *testing.T) {
	ctx := context.Background()
	svc := SetupTestServices(t, config.SqliteDbType)

	require.NoError(t, svc.PromptService.SaveScales(ctx, []document.Document{
		{"id": float64(1), "name": "Empathy", "prompt": "Rate empathy"},
	}))

	require.NoError(t, svc.PromptService.UpdateScale(ctx, 1, document.Document{"prompt": "Rate empathy 0-10"}))

	scales, err := svc.PromptService.ListScales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []document.Document{{"id": float64(1), "name": "Empathy", "prompt": "Rate empathy 0-10"}}, scales)

	err = svc.PromptService.UpdateScale(ctx, 2, document.Document{"prompt": "x"})
	assert.True(t, errors.Is(err, prompts.ErrScaleNotFound))
}
