package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ukrserhiy/litios/internal/app"
	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence"
	"github.com/ukrserhiy/litios/internal/pkg/config"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration named by --config, falling back to CONFIG_PATH.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// dataServices bundles the services the data commands work with.
type dataServices struct {
	db       *gorm.DB
	prompts  prompts.PromptService
	analyses history.AnalysisService
}

func (s *dataServices) Close() error {
	return persistence.CloseDB(s.db)
}

// openDataServices connects to the configured database, migrates it and builds the services.
func openDataServices(cfg *config.RestConfig, log logger.Logger) (*dataServices, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	promptRepo, err := persistence.NewGormPromptRepository(db, log)
	if err != nil {
		return nil, err
	}
	modelRepo, err := persistence.NewGormModelRepository(db, log)
	if err != nil {
		return nil, err
	}
	analysisRepo, err := persistence.NewGormAnalysisRepository(db, log)
	if err != nil {
		return nil, err
	}

	promptService, err := app.NewPromptService(promptRepo, modelRepo, log)
	if err != nil {
		return nil, err
	}
	analysisService, err := app.NewAnalysisService(analysisRepo, log)
	if err != nil {
		return nil, err
	}

	return &dataServices{
		db:       db,
		prompts:  promptService,
		analyses: analysisService,
	}, nil
}
