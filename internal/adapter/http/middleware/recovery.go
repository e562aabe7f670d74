package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"estimate_agent/pkg"
	"estimate_agent/pkg/logger"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", fmt.Sprint(rec),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", fmt.Errorf("panic: %v", rec), http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
		}()

		c.Next()
	}
}
