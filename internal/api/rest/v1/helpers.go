package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into v and answers 400 when it is not valid JSON.
func bindJSON(ctx *gin.Context, v interface{}) bool {
	if err := ctx.ShouldBindJSON(v); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

func internalError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	if log := RequestLogger(ctx); log != nil {
		log.Error(fmt.Sprintf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
	}
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func success(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
