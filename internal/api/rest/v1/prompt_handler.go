package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
)

// PromptHandler defines the interface for handling prompt configuration requests
type PromptHandler interface {
	Get(ctx *gin.Context)
	Save(ctx *gin.Context)
	GetSystemPrompt(ctx *gin.Context)
	SaveSystemPrompt(ctx *gin.Context)
	ListScales(ctx *gin.Context)
	SaveScales(ctx *gin.Context)
	UpdateScale(ctx *gin.Context)
}

type promptHandler struct {
	promptService prompts.PromptService
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(promptService prompts.PromptService) PromptHandler {
	return &promptHandler{
		promptService: promptService,
	}
}

// Get handles the GET request for the full prompt configuration
// @Summary Get the prompt configuration
// @Tags Prompts
// @Produce json
// @Success 200 {object} PromptSetDTO
// @Failure 500 {object} ErrorResponse
// @Router /prompts [get]
func (handler *promptHandler) Get(ctx *gin.Context) {
	set, err := handler.promptService.Get(ctx.Request.Context())
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPromptSetDTO(set))
}

// Save handles the POST request replacing the full prompt configuration
// @Summary Replace the prompt configuration
// @Tags Prompts
// @Accept json
// @Produce json
// @Param requestBody body PromptSetDTO true "Prompt configuration"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /prompts [post]
func (handler *promptHandler) Save(ctx *gin.Context) {
	var request PromptSetDTO
	if !bindJSON(ctx, &request) {
		return
	}

	if err := handler.promptService.Save(ctx.Request.Context(), request.ToDomain()); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// GetSystemPrompt handles the GET request for the system prompt
// @Summary Get the system prompt
// @Tags Prompts
// @Produce json
// @Success 200 {object} SystemPromptDTO
// @Router /prompts/system [get]
func (handler *promptHandler) GetSystemPrompt(ctx *gin.Context) {
	prompt, err := handler.promptService.GetSystemPrompt(ctx.Request.Context())
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SystemPromptDTO{SystemPrompt: prompt})
}

// SaveSystemPrompt handles the POST request setting the system prompt. A missing field saves "".
// @Summary Save the system prompt
// @Tags Prompts
// @Accept json
// @Produce json
// @Param requestBody body SystemPromptDTO true "System prompt"
// @Success 200 {object} SuccessResponse
// @Router /prompts/system [post]
func (handler *promptHandler) SaveSystemPrompt(ctx *gin.Context) {
	var request SystemPromptDTO
	if !bindJSON(ctx, &request) {
		return
	}

	if err := handler.promptService.SaveSystemPrompt(ctx.Request.Context(), request.SystemPrompt); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// ListScales handles the GET request for the scales
// @Summary List the scales
// @Tags Prompts
// @Produce json
// @Success 200 {object} ScalesDTO
// @Router /prompts/scales [get]
func (handler *promptHandler) ListScales(ctx *gin.Context) {
	scales, err := handler.promptService.ListScales(ctx.Request.Context())
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ScalesDTO{Scales: orEmpty(scales)})
}

// SaveScales handles the POST request replacing the scales. A missing field clears them.
// @Summary Replace the scales
// @Tags Prompts
// @Accept json
// @Produce json
// @Param requestBody body ScalesDTO true "Scales"
// @Success 200 {object} SuccessResponse
// @Router /prompts/scales [post]
func (handler *promptHandler) SaveScales(ctx *gin.Context) {
	var request ScalesDTO
	if !bindJSON(ctx, &request) {
		return
	}

	if err := handler.promptService.SaveScales(ctx.Request.Context(), orEmpty(request.Scales)); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// UpdateScale handles the PUT request merging fields into one scale
// @Summary Update a scale
// @Tags Prompts
// @Accept json
// @Produce json
// @Param id path int true "Scale ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompts/scales/{id} [put]
func (handler *promptHandler) UpdateScale(ctx *gin.Context) {
	scaleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Scale not found"})
		return
	}

	var patch document.Document
	if !bindJSON(ctx, &patch) {
		return
	}

	if err := handler.promptService.UpdateScale(ctx.Request.Context(), scaleID, patch); err != nil {
		if errors.Is(err, prompts.ErrScaleNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Scale not found"})
			return
		}
		internalError(ctx, err)
		return
	}

	success(ctx)
}
