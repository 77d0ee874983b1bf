package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler holds the log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// --- Request/Response Structs ---

type AddBodyweightRequest struct {
	Date   string  `json:"date" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

type ToggleAttendanceRequest struct {
	Date string `json:"date" binding:"required"`
}

type SetProteinRequest struct {
	Morning float64 `json:"morning"`
	Lunch   float64 `json:"lunch"`
	Pre     float64 `json:"pre"`
	Dinner  float64 `json:"dinner"`
	Bed     float64 `json:"bed"`
}

// --- Bodyweight ---

func (h *LogHandler) ListBodyweight(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.Bodyweights(c.Request.Context()))
}

func (h *LogHandler) AddBodyweight(c *gin.Context) {
	var req AddBodyweightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.logService.AddBodyweight(c.Request.Context(), req.Date, req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrBodyweightValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save bodyweight")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) DeleteBodyweight(c *gin.Context) {
	if err := h.logService.DeleteBodyweight(c.Request.Context(), c.Param("date")); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not delete bodyweight entry")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogHandler) BodyweightStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.BodyweightStats(c.Request.Context(), time.Now()))
}

func (h *LogHandler) BodyweightSeries(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.BodyweightSeries(c.Request.Context()))
}

// --- Attendance ---

func (h *LogHandler) ListAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.Attendance(c.Request.Context()))
}

func (h *LogHandler) ToggleAttendance(c *gin.Context) {
	var req ToggleAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	attended, err := h.logService.ToggleAttendance(c.Request.Context(), req.Date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save attendance")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "attended": attended})
}

func (h *LogHandler) WeekAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.WeekAttendance(c.Request.Context(), time.Now()))
}

// --- Protein ---

func (h *LogHandler) GetProtein(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.ProteinFor(c.Request.Context(), c.Param("date")))
}

func (h *LogHandler) SetProtein(c *gin.Context) {
	var req SetProteinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	slots := domain.ProteinDay{
		Morning: req.Morning,
		Lunch:   req.Lunch,
		Pre:     req.Pre,
		Dinner:  req.Dinner,
		Bed:     req.Bed,
	}
	if err := h.logService.SetProtein(c.Request.Context(), c.Param("date"), slots); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrProteinValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not save protein")
		}
		return
	}
	c.JSON(http.StatusOK, h.logService.ProteinSummary(c.Request.Context(), c.Param("date")))
}

func (h *LogHandler) ProteinSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.logService.ProteinSummary(c.Request.Context(), c.Param("date")))
}
