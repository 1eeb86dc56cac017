//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence"
	"github.com/ukrserhiy/litios/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	PromptService   prompts.PromptService
	ModelService    prompts.ModelService
	AnalysisService history.AnalysisService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	promptService, err := NewPromptService(dbContext.PromptRepo, dbContext.ModelRepo, log)
	require.NoError(t, err)

	modelService, err := NewModelService(dbContext.ModelRepo, log)
	require.NoError(t, err)

	analysisService, err := NewAnalysisService(dbContext.AnalysisRepo, log)
	require.NoError(t, err)

	return &TestServices{
		PromptService:   promptService,
		ModelService:    modelService,
		AnalysisService: analysisService,
		DBContext:       dbContext,
	}
}
