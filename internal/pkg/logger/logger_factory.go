package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ukrserhiy/litios/internal/pkg/config"
)

// ServiceName is attached to every record as the "service" attribute.
const ServiceName = "litios"

var (
	mu      sync.Mutex
	current Logger
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process logger from settings. The first successful call wins;
// a failed call leaves the logger unset so startup can report the error and retry.
func InitLogger(settings *config.LoggerSettings) error {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return nil
	}

	l, err := newLogger(settings)
	if err != nil {
		return err
	}
	current = l
	return nil
}

// GetLogger returns the process logger set by InitLogger.
func GetLogger() (Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return nil, errors.New("logger not initialized: call InitLogger first")
	}
	return current, nil
}

func newLogger(s *config.LoggerSettings) (Logger, error) {
	if s == nil {
		return nil, errors.New("invalid config: logger settings are missing")
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var l Logger
	switch s.LogType {
	case config.LogTypeConsole:
		l = NewConsoleLogger(s.LogLevel)
	case config.LogTypeFile:
		// lumberjack creates the directory lazily on first write; an unwritable
		// data volume should fail startup instead.
		if err := os.MkdirAll(filepath.Dir(s.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		l = NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge)
	default:
		return nil, fmt.Errorf("unsupported log type: %s", s.LogType)
	}

	return l.With("service", ServiceName), nil
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}
