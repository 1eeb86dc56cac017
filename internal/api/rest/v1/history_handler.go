package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/history"
)

// HistoryHandler defines the interface for handling analysis history requests
type HistoryHandler interface {
	List(ctx *gin.Context)
	ReplaceAll(ctx *gin.Context)
	Add(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type historyHandler struct {
	analysisService history.AnalysisService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(analysisService history.AnalysisService) HistoryHandler {
	return &historyHandler{
		analysisService: analysisService,
	}
}

// List handles the GET request for the history, newest first
// @Summary List analyses
// @Tags History
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} object
// @Failure 400 {object} ErrorResponse
// @Router /history [get]
func (handler *historyHandler) List(ctx *gin.Context) {
	query := history.NewAnalysisQuery()

	if limit := ctx.Query("limit"); len(limit) > 0 {
		n, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid limit: %s", limit)})
			return
		}
		query.Limit = n
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		n, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid offset: %s", offset)})
			return
		}
		query.Offset = n
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := handler.analysisService.List(ctx.Request.Context(), query)
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, orEmpty(entries))
}

// ReplaceAll handles the POST request overwriting the history with a JSON array
// @Summary Replace the history
// @Tags History
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /history [post]
func (handler *historyHandler) ReplaceAll(ctx *gin.Context) {
	var entries []document.Document
	if !bindJSON(ctx, &entries) {
		return
	}

	if err := handler.analysisService.ReplaceAll(ctx.Request.Context(), orEmpty(entries)); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}

// Add handles the POST request putting one analysis at the front of the history
// @Summary Add an analysis
// @Tags History
// @Accept json
// @Produce json
// @Success 200 {object} AddAnalysisResponse
// @Router /history/add [post]
func (handler *historyHandler) Add(ctx *gin.Context) {
	var entry document.Document
	if !bindJSON(ctx, &entry) {
		return
	}

	id, err := handler.analysisService.Add(ctx.Request.Context(), entry)
	if err != nil {
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AddAnalysisResponse{Success: true, ID: id})
}

// GetByID handles the GET request for one analysis
// @Summary Get an analysis
// @Tags History
// @Produce json
// @Param id path int true "Analysis ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse
// @Router /history/{id} [get]
func (handler *historyHandler) GetByID(ctx *gin.Context) {
	analysisID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Analysis not found"})
		return
	}

	entry, err := handler.analysisService.GetByID(ctx.Request.Context(), analysisID)
	if err != nil {
		if errors.Is(err, history.ErrAnalysisNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Analysis not found"})
			return
		}
		internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// DeleteByID handles the DELETE request removing an analysis. Unknown ids succeed.
// @Summary Delete an analysis
// @Tags History
// @Produce json
// @Param id path int true "Analysis ID"
// @Success 200 {object} SuccessResponse
// @Router /history/{id} [delete]
func (handler *historyHandler) DeleteByID(ctx *gin.Context) {
	analysisID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Analysis not found"})
		return
	}

	if err := handler.analysisService.DeleteByID(ctx.Request.Context(), analysisID); err != nil {
		internalError(ctx, err)
		return
	}

	success(ctx)
}
