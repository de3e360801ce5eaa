package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireUUIDParams rejects a request with 404 when one of the named path parameters
// is present but is not a UUID. Routes without the parameter pass through.
func RequireUUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			value, ok := c.Params.Get(name)
			if !ok {
				continue
			}
			if _, err := uuid.Parse(value); err != nil {
				GetLoggerFromCtx(c.Request.Context()).Info("Malformed resource id",
					slog.String("param", name), slog.String("value", value))
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				return
			}
		}
		c.Next()
	}
}
