package api

import (
	"net/http"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// MetricsHandler holds the derived-metrics service dependency.
type MetricsHandler struct {
	metricsService service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

func (h *MetricsHandler) GetFocus(c *gin.Context) {
	c.JSON(http.StatusOK, h.metricsService.Focus(c.Request.Context(), time.Now()))
}

func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.metricsService.Dashboard(c.Request.Context(), time.Now()))
}
