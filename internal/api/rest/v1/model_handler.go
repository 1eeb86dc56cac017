package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
)

// ModelHandler defines the interface for handling model catalogue requests
type ModelHandler interface {
	List(ctx *gin.Context)
	Save(ctx *gin.Context)
	Add(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type modelHandler struct {
	modelService prompts.ModelService
}

// NewModelHandler creates a new ModelHandler
func NewModelHandler(modelService prompts.ModelService) ModelHandler {
	return &modelHandler{
		modelService: modelService,
	}
}

// List handles the GET request for the model catalogue
// @Summary List models
// @Tags Models
// @Produce json
// @Success 200 {object} ModelsDTO
// @Router /models [get]
func (handler *modelHandler) List(ctx *gin.Context) {
	models, err := handler.modelService.List(ctx.Request.Context())
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ModelsDTO{Models: orEmpty(models)})
}

// Save handles the POST request replacing the catalogue
// @Summary Replace models
// @Tags Models
// @Accept json
// @Produce json
// @Param requestBody body ModelsDTO true "Models"
// @Success 200 {object} SuccessResponse
// @Router /models [post]
func (handler *modelHandler) Save(ctx *gin.Context) {
	var request ModelsDTO
	if !bindJSON(ctx, &request) {
		return
	}

	if err := handler.modelService.Save(ctx.Request.Context(), orEmpty(request.Models)); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// Add handles the POST request appending one model
// @Summary Add a model
// @Tags Models
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /models/add [post]
func (handler *modelHandler) Add(ctx *gin.Context) {
	var model document.Document
	if !bindJSON(ctx, &model) {
		return
	}

	if _, ok := model.StringID(); !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed: [Field: id, Tag: required]"})
		return
	}

	if err := handler.modelService.Add(ctx.Request.Context(), model); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// DeleteByID handles the DELETE request removing a model. Model ids contain slashes.
// @Summary Delete a model
// @Tags Models
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} SuccessResponse
// @Router /models/{id} [delete]
func (handler *modelHandler) DeleteByID(ctx *gin.Context) {
	modelID := strings.TrimPrefix(ctx.Param("id"), "/")

	if err := handler.modelService.DeleteByID(ctx.Request.Context(), modelID); err != nil {
		internalError(ctx, fmt.Errorf("failed to delete model: %w", err))
		return
	}

	success(ctx)
}
