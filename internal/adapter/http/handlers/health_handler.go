package handlers

import (
	"net/http"
	"time"

	response "estimate_agent/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.Envelope{data=response.HealthResponse}
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(response.HealthResponse{
		Status:  "ok",
		Time:    time.Now().UTC(),
		Version: h.version,
	}))
}
