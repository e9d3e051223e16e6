package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadevv/timeable-api/internal/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthcheck reports liveness. The service holds no state and no
// connections of its own, so running means healthy.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Service is running",
		Data:    "OK",
	})
}
