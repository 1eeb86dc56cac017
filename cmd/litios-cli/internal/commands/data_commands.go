package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukrserhiy/litios/internal/infrastructure/filestore"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// DataCommandHandler encapsulates the schema and legacy file commands.
type DataCommandHandler struct {
	logger logger.Logger
}

// NewDataCommandHandler initializes and returns a DataCommandHandler instance with a console logger.
func NewDataCommandHandler() (*DataCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DataCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the database schema
func (commandHandler *DataCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	services, err := openDataServices(cfg, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.Close()

	commandHandler.logger.Info("Database schema is up to date (", cfg.Database.Type, ")")
	return nil
}

// ImportCmd loads prompts.json and history.json from a directory into the database.
// Only the files present are imported. A missing directory, a directory holding
// neither file or a corrupt file aborts before anything is written.
func (commandHandler *DataCommandHandler) ImportCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("invalid dir flag: %w", err)
	}

	store, err := filestore.NewFileStore(dir, commandHandler.logger)
	if err != nil {
		return err
	}

	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("import directory %s does not exist", dir)
	}

	set, promptsFound, err := store.ReadPrompts()
	if err != nil {
		return err
	}
	entries, historyFound, err := store.ReadHistory()
	if err != nil {
		return err
	}
	if !promptsFound && !historyFound {
		return fmt.Errorf("no %s or %s in %s", filestore.PromptsFileName, filestore.HistoryFileName, dir)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	services, err := openDataServices(cfg, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.Close()

	if promptsFound {
		if err := services.prompts.Save(cmd.Context(), set); err != nil {
			return err
		}
		commandHandler.logger.Info(fmt.Sprintf("Imported %d scales and %d models from %s",
			len(set.Scales), len(set.Models), store.PromptsPath()))
	} else {
		commandHandler.logger.Warn("Skipping prompts, ", store.PromptsPath(), " not found")
	}

	if historyFound {
		if err := services.analyses.ReplaceAll(cmd.Context(), entries); err != nil {
			return err
		}
		commandHandler.logger.Info(fmt.Sprintf("Imported %d analyses from %s", len(entries), store.HistoryPath()))
	} else {
		commandHandler.logger.Warn("Skipping history, ", store.HistoryPath(), " not found")
	}

	return nil
}

// ExportCmd writes the database content back out as prompts.json and history.json
func (commandHandler *DataCommandHandler) ExportCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("invalid dir flag: %w", err)
	}

	store, err := filestore.NewFileStore(dir, commandHandler.logger)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	services, err := openDataServices(cfg, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.Close()

	set, err := services.prompts.Get(cmd.Context())
	if err != nil {
		return err
	}
	if err := store.SavePrompts(set); err != nil {
		return err
	}

	entries, err := services.analyses.List(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if err := store.SaveHistory(entries); err != nil {
		return err
	}

	commandHandler.logger.Info("Exported data to ", store.PromptsPath(), " and ", store.HistoryPath())
	return nil
}

// InitDataCommands registers the migrate, import and export commands
func InitDataCommands(rootCmd *cobra.Command) error {
	handler, err := NewDataCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create data command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import prompts.json and history.json into the database",
		RunE:  handler.ImportCmd,
	}
	importCmd.Flags().StringP("dir", "", "data", "Directory holding prompts.json and history.json")
	rootCmd.AddCommand(importCmd)

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the database as prompts.json and history.json",
		RunE:  handler.ExportCmd,
	}
	exportCmd.Flags().StringP("dir", "", "data", "Directory to write prompts.json and history.json to")
	rootCmd.AddCommand(exportCmd)

	return nil
}
