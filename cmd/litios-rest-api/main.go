// cmd/litios-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	v1 "github.com/ukrserhiy/litios/internal/api/rest/v1"
	"github.com/ukrserhiy/litios/internal/app"
	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/llm"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/infrastructure/openrouter"
	"github.com/ukrserhiy/litios/internal/infrastructure/persistence"
	"github.com/ukrserhiy/litios/internal/pkg/config"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	prompts          prompts.PromptService
	models           prompts.ModelService
	analyses         history.AnalysisService
	connectionTester llm.ConnectionTester
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	services, err := initializeApplicationServices(db, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeApplicationServices sets up repositories, the OpenRouter client and all application services
func initializeApplicationServices(db *gorm.DB, cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	promptRepo, err := persistence.NewGormPromptRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt repository: %w", err)
	}

	modelRepo, err := persistence.NewGormModelRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create model repository: %w", err)
	}

	analysisRepo, err := persistence.NewGormAnalysisRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis repository: %w", err)
	}

	chatClient, err := openrouter.NewClient(&cfg.OpenRouter, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenRouter client: %w", err)
	}

	promptService, err := app.NewPromptService(promptRepo, modelRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}

	modelService, err := app.NewModelService(modelRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create model service: %w", err)
	}

	analysisService, err := app.NewAnalysisService(analysisRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}

	connectionTester, err := app.NewConnectionTester(chatClient, cfg.OpenRouter.DefaultModel, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection tester: %w", err)
	}

	return &appServices{
		prompts:          promptService,
		models:           modelService,
		analyses:         analysisService,
		connectionTester: connectionTester,
	}, nil
}

// newRouter builds the gin engine with CORS, the API and the static UI
func newRouter(cfg *config.RestConfig, services *appServices, log logger.Logger) *gin.Engine {
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		services.prompts,
		services.models,
		services.analyses,
		services.connectionTester,
		cfg.StaticDir,
		log,
	)

	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, deps.services, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
