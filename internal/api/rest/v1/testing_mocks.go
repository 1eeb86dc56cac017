//go:build unit
// +build unit

package v1

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
)

// MockPromptService is a mock implementation of PromptService
type MockPromptService struct {
	mock.Mock
}

func (m *MockPromptService) Get(ctx context.Context) (*prompts.PromptSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prompts.PromptSet), args.Error(1)
}

func (m *MockPromptService) Save(ctx context.Context, set *prompts.PromptSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockPromptService) GetSystemPrompt(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPromptService) SaveSystemPrompt(ctx context.Context, prompt string) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptService) ListScales(ctx context.Context) ([]document.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockPromptService) SaveScales(ctx context.Context, scales []document.Document) error {
	args := m.Called(ctx, scales)
	return args.Error(0)
}

func (m *MockPromptService) UpdateScale(ctx context.Context, scaleID int64, patch document.Document) error {
	args := m.Called(ctx, scaleID, patch)
	return args.Error(0)
}

// MockModelService is a mock implementation of ModelService
type MockModelService struct {
	mock.Mock
}

func (m *MockModelService) List(ctx context.Context) ([]document.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockModelService) Save(ctx context.Context, models []document.Document) error {
	args := m.Called(ctx, models)
	return args.Error(0)
}

func (m *MockModelService) Add(ctx context.Context, model document.Document) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelService) DeleteByID(ctx context.Context, modelID string) error {
	args := m.Called(ctx, modelID)
	return args.Error(0)
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) List(ctx context.Context, query *history.AnalysisQuery) ([]document.Document, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockAnalysisService) ReplaceAll(ctx context.Context, entries []document.Document) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAnalysisService) Add(ctx context.Context, entry document.Document) (interface{}, error) {
	args := m.Called(ctx, entry)
	return args.Get(0), args.Error(1)
}

func (m *MockAnalysisService) GetByID(ctx context.Context, analysisID int64) (document.Document, error) {
	args := m.Called(ctx, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *MockAnalysisService) DeleteByID(ctx context.Context, analysisID int64) error {
	args := m.Called(ctx, analysisID)
	return args.Error(0)
}

// MockConnectionTester is a mock implementation of ConnectionTester
type MockConnectionTester struct {
	mock.Mock
}

func (m *MockConnectionTester) Test(ctx context.Context, apiKey, model string) (json.RawMessage, error) {
	args := m.Called(ctx, apiKey, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
