//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPortEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("LITIOS_PORT", "")
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	clearPortEnv(t)

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "./web", cfg.StaticDir)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "data/litios.db", cfg.Database.DSN)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, DefaultOpenRouterBaseURL, cfg.OpenRouter.BaseURL)
	assert.Equal(t, DefaultOpenRouterModel, cfg.OpenRouter.DefaultModel)
	assert.Equal(t, DefaultOpenRouterTimeout, cfg.OpenRouter.Timeout)
}

func TestInitializeRestConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	clearPortEnv(t)

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestInitializeRestConfig_PortFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestInitializeRestConfig_FileAndPrefixedEnvironment(t *testing.T) {
	clearPortEnv(t)
	t.Setenv("LITIOS_DATABASE_DSN", "/var/lib/litios/app.db")

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	content := []byte(`port: "8181"
static_dir: /srv/www
logger:
  log_level: debug
  log_type: console
openrouter:
  timeout: 5s
  max_retries: 0
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8181", cfg.Port)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, "/var/lib/litios/app.db", cfg.Database.DSN)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.OpenRouter.Timeout)
	assert.Equal(t, 0, cfg.OpenRouter.MaxRetries)
}

func TestInitializeRestConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := InitializeRestConfig("")
	assert.Error(t, err)
}

func TestOpenRouterSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *OpenRouterSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &OpenRouterSettings{
				BaseURL:      DefaultOpenRouterBaseURL,
				DefaultModel: DefaultOpenRouterModel,
				Timeout:      DefaultOpenRouterTimeout,
				MaxRetries:   2,
			},
			expectedError: false,
		},
		{
			name: "invalid base url",
			settings: &OpenRouterSettings{
				BaseURL:      "not a url",
				DefaultModel: DefaultOpenRouterModel,
				Timeout:      DefaultOpenRouterTimeout,
			},
			expectedError: true,
		},
		{
			name: "timeout too short",
			settings: &OpenRouterSettings{
				BaseURL:      DefaultOpenRouterBaseURL,
				DefaultModel: DefaultOpenRouterModel,
				Timeout:      time.Millisecond,
			},
			expectedError: true,
		},
		{
			name: "too many retries",
			settings: &OpenRouterSettings{
				BaseURL:      DefaultOpenRouterBaseURL,
				DefaultModel: DefaultOpenRouterModel,
				Timeout:      DefaultOpenRouterTimeout,
				MaxRetries:   11,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
