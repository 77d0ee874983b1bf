package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// LibraryHandler holds the exercise library service dependency.
type LibraryHandler struct {
	libraryService service.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(libraryService service.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

type AddExerciseRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *LibraryHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"names":  h.libraryService.Names(c.Request.Context()),
		"custom": h.libraryService.Custom(c.Request.Context()),
	})
}

func (h *LibraryHandler) AddCustomExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	name, err := h.libraryService.AddCustom(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNameEmpty) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": name})
}

func (h *LibraryHandler) RemoveCustomExercise(c *gin.Context) {
	if err := h.libraryService.RemoveCustom(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not remove exercise")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
