package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanRossato/treino-app/services"
	"github.com/jonathanRossato/treino-app/utils"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

// Session exchanges a verified external-auth identity for an API token.
// The user row is created on first sign-in and refreshed on every login.
func (h *AuthController) Session(c *gin.Context) {
	var input services.UpsertUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Upsert(input)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not sign in, please try again"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.OpenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthController) Me(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout is a no-op server side; tokens are stateless and expire on their own.
// The client drops its copy.
func (h *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
