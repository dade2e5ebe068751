package handlers

import (
	"net/http"

	"bizlink/models"
	"bizlink/services"

	"github.com/gin-gonic/gin"
)

// RelationshipHandler - обработчики проекций отношений.
// Пустой список отдается как 200 с пустым массивом, а не 404.
type RelationshipHandler struct {
	Service *services.RelationshipService
}

// Followers - обработчик GET /users/:id/followers
func (h *RelationshipHandler) Followers(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	followers, err := h.Service.Followers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if followers == nil {
		followers = []models.ActorInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

// Following - обработчик GET /users/:id/following
func (h *RelationshipHandler) Following(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	following, err := h.Service.Following(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if following == nil {
		following = []models.ActorInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Friends - обработчик GET /users/:id/friends
func (h *RelationshipHandler) Friends(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	friends, err := h.Service.Friends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if friends == nil {
		friends = []models.ActorInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// Summary - обработчик GET /users/:id/relationships
func (h *RelationshipHandler) Summary(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	summary, err := h.Service.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
