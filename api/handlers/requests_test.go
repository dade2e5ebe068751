package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizlink/models"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStores(t *testing.T) *store.Stores {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = database.AutoMigrate(
		&models.User{}, &models.UserTokens{}, &models.RelationRequest{},
		&models.Invite{}, &models.InviteRecipient{}, &models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return store.NewGormStores(database)
}

func setupRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stores := setupTestStores(t)

	requestHandler := &RequestHandler{Service: services.NewRequestService(stores.Requests, stores.Users, nil)}
	relationshipHandler := &RelationshipHandler{Service: services.NewRelationshipService(stores.Requests, stores.Users)}

	r := gin.New()
	r.POST("/api/v1/requests", requestHandler.Send)
	r.GET("/api/v1/requests/users-type", requestHandler.ListByUserAndType)
	r.GET("/api/v1/requests/:id", requestHandler.Get)
	r.PUT("/api/v1/requests/:id", requestHandler.Update)
	r.DELETE("/api/v1/requests/:id", requestHandler.Delete)
	r.GET("/api/v1/users/:id/followers", relationshipHandler.Followers)
	r.GET("/api/v1/users/:id/friends", relationshipHandler.Friends)
	r.GET("/api/v1/users/:id/relationships", relationshipHandler.Summary)
	return r, stores
}

func seedUser(t *testing.T, stores *store.Stores, nickname string) *models.User {
	t.Helper()
	user := &models.User{Nickname: nickname, FirstName: "Test", LastName: "User", Password: "pw"}
	if err := stores.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendFriendRequestEndpoint(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "sender")
	u2 := seedUser(t, stores, "receiver")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "friend",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool                   `json:"success"`
		Data    models.RelationRequest `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success flag")
	}
	if resp.Data.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", resp.Data.Status)
	}
}

func TestSendFriendRequestBusinessActor(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "victim")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   int64(500),
		"requester_type": "business",
		"requestee_id":   u1.ID,
		"requestee_type": "user",
		"request_type":   "friend",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "only allowed between users") {
		t.Errorf("expected friend actor type message, got %s", w.Body.String())
	}
}

func TestSendRequestMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{"requester_id": 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestSendRequestUnknownType(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "a")
	u2 := seedUser(t, stores, "b")

	// Неизвестный тип запроса - ошибка, без отката к follow
	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "subscribe",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown request type, got %d", w.Code)
	}
}

func TestAcceptFriendRequestFlow(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "u1")
	u2 := seedUser(t, stores, "u2")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "friend",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created struct {
		Data models.RelationRequest `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	// Входящие friend-запросы u2 содержат pending-запись
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/requests/users-type?user_id=%d&request_type=friend", u2.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"pending"`) {
		t.Errorf("expected pending request in listing, got %s", w.Body.String())
	}

	// u2 принимает запрос
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/v1/requests/%d", created.Data.ID), gin.H{
		"status":       "accepted",
		"request_type": "friend",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Дружба видна с обеих сторон
	for _, userID := range []int64{u1.ID, u2.ID} {
		w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/users/%d/friends", userID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Friends []models.ActorInfo `json:"friends"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode friends: %v", err)
		}
		if len(resp.Friends) != 1 {
			t.Errorf("expected one friend for user %d, got %d", userID, len(resp.Friends))
		}
	}
}

func TestUpdateRequestIllegalTransition(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "x1")
	u2 := seedUser(t, stores, "x2")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "follow",
	})
	var created struct {
		Data models.RelationRequest `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/v1/requests/%d", created.Data.ID), gin.H{"status": "rejected"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/v1/requests/%d", created.Data.ID), gin.H{"status": "accepted"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for rejected -> accepted, got %d", w.Code)
	}
}

func TestDeleteRequestThenGet(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "d1")
	u2 := seedUser(t, stores, "d2")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "follow",
	})
	var created struct {
		Data models.RelationRequest `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/v1/requests/%d", created.Data.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/requests/%d", created.Data.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGetRequestNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/v1/requests/12345", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListRequestsMissingUserID(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/v1/requests/users-type", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing user_id, got %d", w.Code)
	}
}

func TestListRequestsDirectionFiltering(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "f1")
	u2 := seedUser(t, stores, "f2")

	w := doJSON(t, r, "POST", "/api/v1/requests", gin.H{
		"requester_id":   u1.ID,
		"requester_type": "user",
		"requestee_id":   u2.ID,
		"requestee_type": "user",
		"request_type":   "follow",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var listing struct {
		Requests []models.RelationRequest `json:"requests"`
	}

	// Исходящие u1
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/requests/users-type?user_id=%d&request_type=follow&direction=sent", u1.ID), nil)
	_ = json.Unmarshal(w.Body.Bytes(), &listing)
	if len(listing.Requests) != 1 {
		t.Errorf("expected one sent request, got %d", len(listing.Requests))
	}

	// Входящих у u1 нет
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/requests/users-type?user_id=%d&request_type=follow&direction=received", u1.ID), nil)
	listing.Requests = nil
	_ = json.Unmarshal(w.Body.Bytes(), &listing)
	if len(listing.Requests) != 0 {
		t.Errorf("expected no received requests, got %d", len(listing.Requests))
	}
}

// Пустой список подписчиков отдается как 200 с пустым массивом
func TestFollowersEmptyIsOK(t *testing.T) {
	r, stores := setupRouter(t)
	u1 := seedUser(t, stores, "lonely")

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/users/%d/followers", u1.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty followers, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"followers":[]`) {
		t.Errorf("expected empty followers array, got %s", w.Body.String())
	}
}

func TestSummaryUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/v1/users/999/relationships", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %d", w.Code)
	}
}
