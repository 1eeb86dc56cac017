//go:build unit
// +build unit

package app

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/llm"
)

// MockChatClient is a mock implementation of llm.ChatClient
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Complete(ctx context.Context, apiKey string, req *llm.ChatRequest) (json.RawMessage, error) {
	args := m.Called(ctx, apiKey, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockModelRepository is a mock implementation of prompts.ModelRepository
type MockModelRepository struct {
	mock.Mock
}

func (m *MockModelRepository) List(ctx context.Context) ([]document.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockModelRepository) Replace(ctx context.Context, models []document.Document) error {
	args := m.Called(ctx, models)
	return args.Error(0)
}

func (m *MockModelRepository) Append(ctx context.Context, model document.Document) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelRepository) DeleteByID(ctx context.Context, modelID string) error {
	args := m.Called(ctx, modelID)
	return args.Error(0)
}
