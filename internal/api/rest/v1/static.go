package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves the UI from staticDir for every unmatched GET or HEAD.
// Unknown API paths and other methods answer with a JSON 404.
func StaticFallback(staticDir string) gin.HandlerFunc {
	fs := gin.Dir(staticDir, false)

	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		isRead := ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead

		if !isRead || path == BasePath || strings.HasPrefix(path, BasePath+"/") {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		ctx.FileFromFS(path, fs)
	}
}
