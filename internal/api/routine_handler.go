package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// RoutineHandler holds the routine service dependency.
type RoutineHandler struct {
	routineService service.RoutineService
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routineService service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// --- Request/Response Structs ---

type CreateRoutineRequest struct {
	Name     string `json:"name"`
	Template string `json:"template"` // empty means a blank custom routine
}

type RenameRoutineRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetActiveRoutineRequest struct {
	ID string `json:"id" binding:"required"`
}

type UpdateDayRequest struct {
	Label     string                `json:"label"`
	Rest      bool                  `json:"rest"`
	Exercises []domain.ExercisePlan `json:"exercises"`
}

// --- Handler Methods ---

func (h *RoutineHandler) ListRoutines(c *gin.Context) {
	c.JSON(http.StatusOK, h.routineService.List(c.Request.Context()))
}

func (h *RoutineHandler) GetRoutine(c *gin.Context) {
	routine, err := h.routineService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *RoutineHandler) GetActive(c *gin.Context) {
	c.JSON(http.StatusOK, h.routineService.Active(c.Request.Context()))
}

func (h *RoutineHandler) SetActive(c *gin.Context) {
	var req SetActiveRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.routineService.SetActive(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not set active routine")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeRoutineId": req.ID})
}

func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	routine, err := h.routineService.Create(c.Request.Context(), req.Name, req.Template)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTemplate), errors.Is(err, service.ErrRoutineValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not create routine")
		}
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (h *RoutineHandler) DuplicateRoutine(c *gin.Context) {
	routine, err := h.routineService.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not duplicate routine")
		}
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (h *RoutineHandler) RenameRoutine(c *gin.Context) {
	var req RenameRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	routine, err := h.routineService.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoutineNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoutineValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not rename routine")
		}
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *RoutineHandler) UpdateDay(c *gin.Context) {
	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	day := domain.DayPlan{Label: req.Label, Rest: req.Rest, Exercises: req.Exercises}
	routine, err := h.routineService.UpdateDay(c.Request.Context(), c.Param("id"), c.Param("day"), day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoutineNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnknownDayKey):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not update day")
		}
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	if err := h.routineService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrRoutineNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLastRoutine):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not delete routine")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoutineHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.routineService.Templates())
}
