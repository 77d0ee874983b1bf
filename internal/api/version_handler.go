package api

import (
	"fmt"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// VersionHandler holds the version service dependency.
type VersionHandler struct {
	versionService service.VersionService
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(versionService service.VersionService) *VersionHandler {
	return &VersionHandler{versionService: versionService}
}

type MarkAppliedRequest struct {
	Version string `json:"version" binding:"required"`
}

func (h *VersionHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.versionService.Status(c.Request.Context()))
}

func (h *VersionHandler) MarkApplied(c *gin.Context) {
	var req MarkAppliedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.versionService.MarkApplied(c.Request.Context(), req.Version); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not record version")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": req.Version})
}
