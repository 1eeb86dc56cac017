package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

const requestLoggerKey = "request_logger"

// RequestID keeps an incoming request id or assigns a new one and echoes it in the response.
// When log is set, a child logger tagged with the id is stored for the handlers.
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(RequestIDHeader, requestID)
		if log != nil {
			ctx.Set(requestLoggerKey, log.With("request_id", requestID))
		}
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// RequestLogger returns the logger RequestID stored for this request, or nil.
func RequestLogger(ctx *gin.Context) logger.Logger {
	value, ok := ctx.Get(requestLoggerKey)
	if !ok {
		return nil
	}
	log, _ := value.(logger.Logger)
	return log
}
