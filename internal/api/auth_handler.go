package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the PIN lock service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type UnlockRequest struct {
	Pin string `json:"pin" binding:"required"`
}

type UnlockResponse struct {
	Token string `json:"token"`
}

type SetPinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin" binding:"required,min=4"`
}

type ClearPinRequest struct {
	CurrentPin string `json:"currentPin" binding:"required"`
}

// --- Handler Methods ---

// Status reports whether the tracker is currently locked.
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locked": h.authService.Required(c.Request.Context())})
}

// Unlock verifies the PIN and returns a bearer token.
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, err := h.authService.Unlock(c.Request.Context(), req.Pin)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not process unlock")
		}
		return
	}
	c.JSON(http.StatusOK, UnlockResponse{Token: token})
}

// SetPin sets or replaces the PIN.
func (h *AuthHandler) SetPin(c *gin.Context) {
	var req SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.authService.SetPin(c.Request.Context(), req.CurrentPin, req.NewPin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationFailed):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrPinValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not save PIN")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN updated"})
}

// ClearPin removes the lock entirely.
func (h *AuthHandler) ClearPin(c *gin.Context) {
	var req ClearPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.authService.ClearPin(c.Request.Context(), req.CurrentPin)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not clear PIN")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN removed"})
}
