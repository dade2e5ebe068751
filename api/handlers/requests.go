package handlers

import (
	"net/http"
	"strconv"

	"bizlink/api/middleware"
	"bizlink/models"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
)

// RequestHandler - обработчики жизненного цикла запросов на отношения
type RequestHandler struct {
	Service *services.RequestService
}

type sendRequestBody struct {
	RequesterID   int64  `json:"requester_id" binding:"required"`
	RequesterType string `json:"requester_type" binding:"required"`
	RequesteeID   int64  `json:"requestee_id" binding:"required"`
	RequesteeType string `json:"requestee_type" binding:"required"`
	RequestType   string `json:"request_type" binding:"required"`
}

// Send - обработчик POST /requests
func (h *RequestHandler) Send(c *gin.Context) {
	var body sendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	requesterType, err := models.ParseActorType(body.RequesterType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requesteeType, err := models.ParseActorType(body.RequesteeType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reqType, err := models.ParseRequestType(body.RequestType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Service.SendRequest(c.Request.Context(),
		models.ActorRef{ID: body.RequesterID, Type: requesterType},
		models.ActorRef{ID: body.RequesteeID, Type: requesteeType},
		reqType,
	)
	if err != nil {
		middleware.RecordRequestOperation("send", "error")
		respondError(c, err)
		return
	}

	middleware.RecordRequestOperation("send", "ok")
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": request})
}

// Get - обработчик GET /requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	request, err := h.Service.GetRequestByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

type updateRequestBody struct {
	Status      string  `json:"status" binding:"required"`
	RequestType *string `json:"request_type"`
}

// Update - обработчик PUT /requests/:id (смена статуса, при принятии
// возможна переквалификация follow -> friend)
func (h *RequestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body updateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	status, err := models.ParseRequestStatus(body.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var declaredType *models.RequestType
	if body.RequestType != nil {
		t, err := models.ParseRequestType(*body.RequestType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		declaredType = &t
	}

	request, err := h.Service.UpdateRequestStatus(c.Request.Context(), id, status, declaredType)
	if err != nil {
		middleware.RecordRequestOperation("update", "error")
		respondError(c, err)
		return
	}
	middleware.RecordRequestOperation("update", "ok")
	c.JSON(http.StatusOK, request)
}

// Delete - обработчик DELETE /requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	request, err := h.Service.DeleteRequestByID(c.Request.Context(), id)
	if err != nil {
		middleware.RecordRequestOperation("delete", "error")
		respondError(c, err)
		return
	}
	middleware.RecordRequestOperation("delete", "ok")
	c.JSON(http.StatusOK, request)
}

// ListByUserAndType - обработчик GET /requests/users-type
// Параметры: user_id (обязателен), request_type, direction (sent|received),
// allow_all=true снимает фильтр по типу
func (h *RequestHandler) ListByUserAndType(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	direction := store.DirectionReceived
	switch c.Query("direction") {
	case "", "received":
	case "sent":
		direction = store.DirectionSent
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be sent or received"})
		return
	}

	var reqType *models.RequestType
	if typeStr := c.Query("request_type"); typeStr != "" && c.Query("allow_all") != "true" {
		t, err := models.ParseRequestType(typeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		reqType = &t
	}

	requests, err := h.Service.ListRequestsForUser(c.Request.Context(), userID, reqType, direction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
