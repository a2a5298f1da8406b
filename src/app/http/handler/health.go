package handler

import (
	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/response"
	"pressroom/src/core/usecase"
)

// HealthHandler handles the health endpoint.
type HealthHandler struct {
	healthService *usecase.HealthService
	environment   string
}

func NewHealthHandler(healthService *usecase.HealthService, environment string) *HealthHandler {
	return &HealthHandler{healthService: healthService, environment: environment}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	response.OK(c, status, map[string]any{
		"version":     "1.0.0",
		"environment": h.environment,
		"services": gin.H{
			"database": status.Database,
		},
		"features": []string{
			"Articles CRUD",
			"Users Management",
			"Comments System",
			"Search",
			"Pagination",
		},
	})
}
