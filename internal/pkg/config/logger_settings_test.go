//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultLoggerSettings_AreValid(t *testing.T) {
	settings := DefaultLoggerSettings()
	require.NoError(t, settings.Validate())

	settings.LogType = LogTypeFile
	assert.NoError(t, settings.Validate(), "switching to the file logger needs no further settings")
	assert.Equal(t, DefaultLogFilePath, settings.FilePath)
}

func TestInitializeRestConfig_LoggerDefaults(t *testing.T) {
	clearPortEnv(t)

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLoggerSettings(), cfg.Logger)
}

func TestInitializeRestConfig_FileLoggerFromYAML(t *testing.T) {
	clearPortEnv(t)

	path := writeRestConfig(t, `logger:
  log_level: warning
  log_type: file
  file_path: /var/log/litios/litios.log
  max_size: 50
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelWarning, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeFile, cfg.Logger.LogType)
	assert.Equal(t, "/var/log/litios/litios.log", cfg.Logger.FilePath)
	assert.Equal(t, 50, cfg.Logger.MaxSize)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Logger.MaxBackups)
	assert.Equal(t, DefaultLogMaxAgeDays, cfg.Logger.MaxAge)
}

func TestInitializeRestConfig_LoggerEnvironmentOverridesYAML(t *testing.T) {
	clearPortEnv(t)
	t.Setenv("LITIOS_LOGGER_LOG_TYPE", LogTypeFile)
	t.Setenv("LITIOS_LOGGER_MAX_AGE", "7")

	path := writeRestConfig(t, `logger:
  log_level: debug
  log_type: console
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeFile, cfg.Logger.LogType)
	assert.Equal(t, 7, cfg.Logger.MaxAge)
}

func TestInitializeRestConfig_RejectsInvalidLoggerSettings(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "file logger with empty path",
			yaml:  "logger:\n  log_type: file\n  file_path: \"\"\n",
			field: "Field: FilePath, Tag: required_if",
		},
		{
			name:  "file logger keeps too many backups",
			yaml:  "logger:\n  log_type: file\n  max_backups: 50\n",
			field: "Field: MaxBackups, Tag: max",
		},
		{
			name:  "file logger rotates above 100 MB",
			yaml:  "logger:\n  log_type: file\n  max_size: 500\n",
			field: "Field: MaxSize, Tag: max",
		},
		{
			name:  "file logger without retention",
			yaml:  "logger:\n  log_type: file\n  max_age: 0\n",
			field: "Field: MaxAge, Tag: required_if",
		},
		{
			name:  "negative retention",
			yaml:  "logger:\n  max_age: -1\n",
			field: "Field: MaxAge, Tag: min",
		},
		{
			name:  "unknown level",
			yaml:  "logger:\n  log_level: trace\n",
			field: "Field: LogLevel, Tag: oneof",
		},
		{
			name:  "unknown type",
			yaml:  "logger:\n  log_type: syslog\n",
			field: "Field: LogType, Tag: oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearPortEnv(t)

			_, err := InitializeRestConfig(writeRestConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed for LoggerSettings")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoggerSettings_ConsoleIgnoresRotation(t *testing.T) {
	settings := &LoggerSettings{
		LogLevel: LogLevelCritical,
		LogType:  LogTypeConsole,
	}
	assert.NoError(t, settings.Validate())
}
