//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/config"
	"github.com/ukrserhiy/litios/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	PromptRepo   prompts.PromptRepository
	ModelRepo    prompts.ModelRepository
	AnalysisRepo history.AnalysisRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	promptRepo, err := NewGormPromptRepository(db, log)
	require.NoError(t, err, "Failed to create prompt repository")

	modelRepo, err := NewGormModelRepository(db, log)
	require.NoError(t, err, "Failed to create model repository")

	analysisRepo, err := NewGormAnalysisRepository(db, log)
	require.NoError(t, err, "Failed to create analysis repository")

	return &TestContext{
		DB:           db,
		PromptRepo:   promptRepo,
		ModelRepo:    modelRepo,
		AnalysisRepo: analysisRepo,
	}
}
