package controllers

import (
	"log"
	"net/http"

	"looncamp-backend/middleware"
	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	result, err := ac.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err, "Server error. Please try again.")
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "Login successful.", result)
}

// Logout always acknowledges; the client discards its token.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, ok := middleware.BearerToken(c); ok {
		if err := ac.Auth.Logout(c.Request.Context(), token); err != nil {
			log.Printf("⚠️ token revocation failed: %v", err)
		}
	}
	utils.JSONMessage(c, http.StatusOK, "Logout successful.")
}

func (ac *AuthController) Verify(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "Token is valid.", gin.H{"admin": admin})
}
