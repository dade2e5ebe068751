package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"bizlink/models"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
)

func setupInviteRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stores := setupTestStores(t)

	inviteHandler := &InviteHandler{Service: services.NewInviteService(stores.Invites, stores.Users)}

	r := gin.New()
	r.POST("/api/v1/invites", inviteHandler.Create)
	r.GET("/api/v1/invites/entity", inviteHandler.ListByEntity)
	r.DELETE("/api/v1/invites/entity", inviteHandler.DeleteByEntity)
	r.GET("/api/v1/invites/:id", inviteHandler.Get)
	r.PUT("/api/v1/invites/:id", inviteHandler.Update)
	r.DELETE("/api/v1/invites/:id", inviteHandler.Delete)
	return r, stores
}

func TestCreateAndFetchInvite(t *testing.T) {
	r, stores := setupInviteRouter(t)
	inviter := seedUser(t, stores, "founder")
	invitee := seedUser(t, stores, "candidate")

	w := doJSON(t, r, "POST", "/api/v1/invites", gin.H{
		"inviter_id":  inviter.ID,
		"entity_id":   int64(77),
		"entity_type": "team",
		"invitee_ids": []int64{invitee.ID},
		"title":       "Join our team",
		"message":     "We would love to have you",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Data models.Invite `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(created.Data.Recipients) != 1 {
		t.Errorf("expected one recipient, got %d", len(created.Data.Recipients))
	}

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/invites/%d", created.Data.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fetched models.Invite
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("failed to decode invite: %v", err)
	}
	if fetched.Title != "Join our team" {
		t.Errorf("unexpected title %q", fetched.Title)
	}
}

func TestCreateInviteUserEntityRejected(t *testing.T) {
	r, stores := setupInviteRouter(t)
	inviter := seedUser(t, stores, "solo")

	// Пригласить можно только в организацию, не к пользователю
	w := doJSON(t, r, "POST", "/api/v1/invites", gin.H{
		"inviter_id":  inviter.ID,
		"entity_id":   inviter.ID,
		"entity_type": "user",
		"invitee_ids": []int64{inviter.ID},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for user entity, got %d", w.Code)
	}
}

func TestDeleteEntityInvitesScoped(t *testing.T) {
	r, stores := setupInviteRouter(t)
	inviter := seedUser(t, stores, "owner")
	invitee := seedUser(t, stores, "member")

	for _, entityID := range []int64{10, 10, 20} {
		w := doJSON(t, r, "POST", "/api/v1/invites", gin.H{
			"inviter_id":  inviter.ID,
			"entity_id":   entityID,
			"entity_type": "business",
			"invitee_ids": []int64{invitee.ID},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	}

	w := doJSON(t, r, "DELETE", "/api/v1/invites/entity?entity_id=10&entity_type=business", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Deleted != 2 {
		t.Errorf("expected 2 deleted invites, got %d", resp.Deleted)
	}

	// Приглашения другой организации не затронуты
	w = doJSON(t, r, "GET", "/api/v1/invites/entity?entity_id=20&entity_type=business", nil)
	var listing struct {
		Invites []models.Invite `json:"invites"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(listing.Invites) != 1 {
		t.Errorf("expected one remaining invite, got %d", len(listing.Invites))
	}
}

func TestGetInviteNotFound(t *testing.T) {
	r, _ := setupInviteRouter(t)

	w := doJSON(t, r, "GET", "/api/v1/invites/404", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
