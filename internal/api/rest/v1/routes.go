package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukrserhiy/litios/internal/domain/history"
	"github.com/ukrserhiy/litios/internal/domain/llm"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes, the health check and the static UI.
func SetupRoutes(r *gin.Engine,
	promptService prompts.PromptService,
	modelService prompts.ModelService,
	analysisService history.AnalysisService,
	connectionTester llm.ConnectionTester,
	staticDir string,
	log logger.Logger) {

	r.Use(RequestID(log))

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	api := r.Group(BasePath) // lookup in version file

	// Prompts Routes
	promptHandler := NewPromptHandler(promptService)
	api.GET("/prompts", promptHandler.Get)
	api.POST("/prompts", promptHandler.Save)
	api.GET("/prompts/system", promptHandler.GetSystemPrompt)
	api.POST("/prompts/system", promptHandler.SaveSystemPrompt)
	api.GET("/prompts/scales", promptHandler.ListScales)
	api.POST("/prompts/scales", promptHandler.SaveScales)
	api.PUT("/prompts/scales/:id", promptHandler.UpdateScale)

	// Models Routes
	modelHandler := NewModelHandler(modelService)
	api.GET("/models", modelHandler.List)
	api.POST("/models", modelHandler.Save)
	api.POST("/models/add", modelHandler.Add)
	api.DELETE("/models/*id", modelHandler.DeleteByID)

	// History Routes
	historyHandler := NewHistoryHandler(analysisService)
	api.GET("/history", historyHandler.List)
	api.POST("/history", historyHandler.ReplaceAll)
	api.POST("/history/add", historyHandler.Add)
	api.GET("/history/:id", historyHandler.GetByID)
	api.DELETE("/history/:id", historyHandler.DeleteByID)

	// OpenRouter Routes
	openRouterHandler := NewOpenRouterHandler(connectionTester)
	api.POST("/test-openrouter", openRouterHandler.Test)

	r.NoRoute(StaticFallback(staticDir))
}
