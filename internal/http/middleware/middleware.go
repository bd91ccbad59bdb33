package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"unibridge.app/compass/common/id"
	"unibridge.app/compass/common/logger"
)

// RequestID assigns a snowflake ID to every request and threads it
// through the context so all downstream logs carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.New()
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logger logs one line per completed request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		slog.InfoContext(ctx, "request completed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// Recovery converts panics into a generic 500 instead of tearing down
// the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					"panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Temporarily unable to process your request."})
			}
		}()
		c.Next()
	}
}
