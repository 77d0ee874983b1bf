package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request/Response Structs ---

// UpdateProfileRequest uses pointers so absent fields keep their stored
// values (shallow merge).
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	ProteinGoal  *int    `json:"proteinGoal"`
	WeekStart    *string `json:"weekStart" binding:"omitempty,oneof=mon sun"`
	HideRestDays *bool   `json:"hideRestDays"`
}

type SetScreenRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// --- Handler Methods ---

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.Get(c.Request.Context()))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), service.ProfileUpdate{
		Name:         req.Name,
		ProteinGoal:  req.ProteinGoal,
		WeekStart:    req.WeekStart,
		HideRestDays: req.HideRestDays,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.State(c.Request.Context()))
}

func (h *ProfileHandler) SetActiveScreen(c *gin.Context) {
	var req SetScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.profileService.SetActiveScreen(c.Request.Context(), req.Screen); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not save screen")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeScreen": req.Screen})
}

func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	if err := h.profileService.CompleteOnboarding(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not save onboarding state")
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboardingDone": true})
}
