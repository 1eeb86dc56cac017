package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukrserhiy/litios/internal/domain/llm"
)

// OpenRouterHandler defines the interface for the OpenRouter connectivity check
type OpenRouterHandler interface {
	Test(ctx *gin.Context)
}

type openRouterHandler struct {
	tester llm.ConnectionTester
}

// NewOpenRouterHandler creates a new OpenRouterHandler
func NewOpenRouterHandler(tester llm.ConnectionTester) OpenRouterHandler {
	return &openRouterHandler{
		tester: tester,
	}
}

// Test handles the POST request probing OpenRouter with the caller's key
// @Summary Test an OpenRouter key
// @Tags OpenRouter
// @Accept json
// @Produce json
// @Param requestBody body OpenRouterTestRequest true "Key and model"
// @Success 200 {object} OpenRouterTestResponse
// @Failure 400 {object} OpenRouterFailureResponse
// @Failure 500 {object} OpenRouterFailureResponse
// @Router /test-openrouter [post]
func (handler *openRouterHandler) Test(ctx *gin.Context) {
	var request OpenRouterTestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, OpenRouterFailureResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, OpenRouterFailureResponse{Error: err.Error()})
		return
	}

	result, err := handler.tester.Test(ctx.Request.Context(), request.APIKey, request.Model)
	if err != nil {
		var upstreamErr *llm.UpstreamError
		if errors.As(err, &upstreamErr) {
			if log := RequestLogger(ctx); log != nil {
				log.Warn("OpenRouter answered ", upstreamErr.StatusCode)
			}
			body := upstreamErr.Body
			ctx.JSON(upstreamErr.StatusCode, OpenRouterFailureResponse{
				Error: upstreamErr.Error(),
				Body:  &body,
			})
			return
		}
		_ = ctx.Error(err)
		if log := RequestLogger(ctx); log != nil {
			log.Error("OpenRouter test failed: ", err)
		}
		ctx.JSON(http.StatusInternalServerError, OpenRouterFailureResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, OpenRouterTestResponse{Success: true, Result: result})
}
