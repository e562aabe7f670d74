package middleware

import (
	"net/http"
	"strings"

	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg"
	"estimate_agent/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIKey = "X-API-Key"

	apiKeyUserKey = "api_key_user_id"
)

var (
	errMissingAPIKey = pkg.NewDomainErrorSimple("MISSING_API_KEY", "API key is required", http.StatusUnauthorized)
	errInvalidAPIKey = pkg.NewDomainErrorSimple("INVALID_API_KEY", "Invalid API key", http.StatusUnauthorized)
)

// APIKeyAuth accepts a key from X-API-Key or "Authorization: Bearer <key>"
// and checks it against the active keys in keys.
func APIKeyAuth(keys interfaces.IAPIKeyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := apiKeyFromRequest(c)
		if value == "" {
			c.AbortWithStatusJSON(errMissingAPIKey.HTTPStatus, errMissingAPIKey.ToHTTPError())
			return
		}

		key, err := keys.FindActive(c.Request.Context(), value)
		if err != nil {
			logger.Error(c.Request.Context(), "api key lookup failed", "error", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if key.ID == "" || !key.IsActive {
			c.AbortWithStatusJSON(errInvalidAPIKey.HTTPStatus, errInvalidAPIKey.ToHTTPError())
			return
		}

		c.Set(apiKeyUserKey, key.UserID)
		c.Next()
	}
}

func apiKeyFromRequest(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderAPIKey)); v != "" {
		return v
	}
	if v, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func GetAPIKeyUserID(c *gin.Context) string {
	return c.GetString(apiKeyUserKey)
}
