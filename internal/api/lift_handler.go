package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// LiftHandler holds the lift service dependency.
type LiftHandler struct {
	liftService service.LiftService
}

// NewLiftHandler creates a new LiftHandler.
func NewLiftHandler(liftService service.LiftService) *LiftHandler {
	return &LiftHandler{liftService: liftService}
}

// --- Request/Response Structs ---

type RecordLiftRequest struct {
	ExerciseName string             `json:"exerciseName" binding:"required"`
	Date         string             `json:"date"` // empty means today
	Sets         []domain.SetDetail `json:"sets" binding:"required"`
	RoutineID    string             `json:"routineId"`
	RoutineName  string             `json:"routineName"`
	DayKey       string             `json:"dayKey"`
}

type SetTargetRequest struct {
	Exercise string  `json:"exercise" binding:"required"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
}

// --- Handler Methods ---

func (h *LiftHandler) RecordLift(c *gin.Context) {
	var req RecordLiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.liftService.Record(c.Request.Context(), service.RecordLiftInput{
		ExerciseName: req.ExerciseName,
		Date:         req.Date,
		Sets:         req.Sets,
		RoutineID:    req.RoutineID,
		RoutineName:  req.RoutineName,
		DayKey:       req.DayKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLiftValidation), errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not record lift")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListLifts returns the log, newest-first, narrowed by query parameters:
// exercise, routineId, from, to, limit.
func (h *LiftHandler) ListLifts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	lifts := h.liftService.List(c.Request.Context(), service.LiftFilter{
		Exercise:  c.Query("exercise"),
		RoutineID: c.Query("routineId"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Limit:     limit,
	})
	c.JSON(http.StatusOK, lifts)
}

func (h *LiftHandler) DeleteLift(c *gin.Context) {
	if err := h.liftService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrLiftNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not delete lift")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LiftHandler) GetStats(c *gin.Context) {
	exercise := c.Query("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "exercise query parameter is required")
		return
	}
	c.JSON(http.StatusOK, h.liftService.Stats(c.Request.Context(), exercise, time.Now()))
}

// GetTrend feeds the progress chart: query parameters exercise (required),
// metric (top, e1rm, volume) and limit.
func (h *LiftHandler) GetTrend(c *gin.Context) {
	exercise := c.Query("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "exercise query parameter is required")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	feed, err := h.liftService.Trend(c.Request.Context(), exercise, c.Query("metric"), limit)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *LiftHandler) GetTargets(c *gin.Context) {
	c.JSON(http.StatusOK, h.liftService.Targets(c.Request.Context()))
}

func (h *LiftHandler) SetTarget(c *gin.Context) {
	var req SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.liftService.SetTarget(c.Request.Context(), req.Exercise, req.Weight); err != nil {
		if errors.Is(err, service.ErrTargetInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save target")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "target saved"})
}

func (h *LiftHandler) ClearTarget(c *gin.Context) {
	exercise := c.Query("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "exercise query parameter is required")
		return
	}
	if err := h.liftService.ClearTarget(c.Request.Context(), exercise); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not clear target")
		return
	}
	c.Status(http.StatusNoContent)
}
