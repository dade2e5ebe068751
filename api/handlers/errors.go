package handlers

import (
	"errors"
	"net/http"

	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
)

// respondError транслирует ошибки сервисного слоя в HTTP-коды:
// валидация - 400, не найдено - 404, конфликт - 409, остальное - 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfRequest),
		errors.Is(err, services.ErrFriendActorType),
		errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrActorNotFound),
		errors.Is(err, services.ErrInviteEntityType),
		errors.Is(err, services.ErrNoInvitees):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
