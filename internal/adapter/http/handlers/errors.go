package handlers

import (
	"context"
	"net/http"

	"estimate_agent/pkg"
	"estimate_agent/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingSessionID = pkg.NewDomainErrorSimple("MISSING_SESSION_ID", "session_id is required", http.StatusBadRequest)
)

// writeError renders appErr as the error envelope. Causes of non-operational
// errors are logged and never sent to the client.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if !appErr.Operational {
		logger.Error(c.Request.Context(), "request failed",
			"code", appErr.Code,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidInput(err error) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func withSession(c *gin.Context, sessionID string) context.Context {
	return context.WithValue(c.Request.Context(), logger.SessionIDKey, sessionID)
}
