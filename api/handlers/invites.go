package handlers

import (
	"net/http"
	"strconv"

	"bizlink/models"
	"bizlink/services"

	"github.com/gin-gonic/gin"
)

// InviteHandler - обработчики приглашений в организации
type InviteHandler struct {
	Service *services.InviteService
}

type createInviteBody struct {
	InviterID  int64   `json:"inviter_id" binding:"required"`
	EntityID   int64   `json:"entity_id" binding:"required"`
	EntityType string  `json:"entity_type" binding:"required"`
	InviteeIDs []int64 `json:"invitee_ids" binding:"required"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
}

// Create - обработчик POST /invites
func (h *InviteHandler) Create(c *gin.Context) {
	var body createInviteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	entityType, err := models.ParseActorType(body.EntityType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := h.Service.CreateInvite(c.Request.Context(), body.InviterID,
		models.ActorRef{ID: body.EntityID, Type: entityType},
		body.InviteeIDs, body.Title, body.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": invite})
}

// Get - обработчик GET /invites/:id
func (h *InviteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	invite, err := h.Service.GetInviteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

type updateInviteBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Update - обработчик PUT /invites/:id
func (h *InviteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body updateInviteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	invite, err := h.Service.UpdateInvite(c.Request.Context(), id, body.Title, body.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// Delete - обработчик DELETE /invites/:id
func (h *InviteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	invite, err := h.Service.DeleteInviteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// ListByEntity - обработчик GET /invites/entity?entity_id&entity_type
func (h *InviteHandler) ListByEntity(c *gin.Context) {
	entityID, entityType, ok := parseEntityQuery(c)
	if !ok {
		return
	}
	invites, err := h.Service.GetInvitesByEntity(c.Request.Context(), entityID, entityType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": invites})
}

// DeleteByEntity - обработчик DELETE /invites/entity?entity_id&entity_type
func (h *InviteHandler) DeleteByEntity(c *gin.Context) {
	entityID, entityType, ok := parseEntityQuery(c)
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteEntityInvites(c.Request.Context(), entityID, entityType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseEntityQuery(c *gin.Context) (int64, models.ActorType, bool) {
	entityID, err := strconv.ParseInt(c.Query("entity_id"), 10, 64)
	if err != nil || entityID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity_id is required"})
		return 0, "", false
	}
	entityType, err := models.ParseActorType(c.Query("entity_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, "", false
	}
	return entityID, entityType, true
}
