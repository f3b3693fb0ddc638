package handlers

import (
	"errors"
	"net/http"

	"pos_terminal/internal/services"
	"pos_terminal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

type loginRequest struct {
	OperatorID int64  `json:"operatorId" binding:"required"`
	Pin        string `json:"pin" binding:"required"`
}

// Login handles operator sign-in and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	token, op, err := h.authService.Login(req.OperatorID, req.Pin)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid operator id or pin.", ""))
			return
		}
		utils.LogError(err, "Login: failed to issue token")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to sign in.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"operator":    gin.H{"id": op.ID, "name": op.Name, "role": op.Role},
	})
}

// Logout clears the terminal's current user selector.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err != nil {
		respondStorageAware(c, err, "Logout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
