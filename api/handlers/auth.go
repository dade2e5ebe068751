package handlers

import (
	"errors"
	"net/http"

	"bizlink/models"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler - регистрация и вход в каталоге пользователей
type AuthHandler struct {
	Users *services.UserService
}

type RegisterRequest struct {
	Nickname  string `json:"nickname" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Firstname string `json:"first_name"`
	Lastname  string `json:"last_name"`
	City      string `json:"city"`
}

type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register - обработчик POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var registerRequest RegisterRequest
	if err := c.ShouldBindJSON(&registerRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	newUser := models.User{
		Nickname:  registerRequest.Nickname,
		FirstName: registerRequest.Firstname,
		LastName:  registerRequest.Lastname,
		Password:  registerRequest.Password,
		City:      registerRequest.City,
	}

	userID, err := h.Users.Register(c.Request.Context(), &newUser)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

// Login - обработчик POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var loginRequest LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, err := h.Users.Login(c.Request.Context(), loginRequest.Nickname, loginRequest.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || err.Error() == "invalid password" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful",
		"token":    token,
		"nickname": loginRequest.Nickname})
}

// Logout - обработчик POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Users.Logout(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
