package services

import (
	"context"
	"testing"

	"bizlink/models"
	"bizlink/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetInvite(t *testing.T) {
	stores := setupStores(t)
	is := NewInviteService(stores.Invites, stores.Users)
	ctx := context.Background()

	inviter := createUser(t, stores)
	invitee1 := createUser(t, stores)
	invitee2 := createUser(t, stores)

	invite, err := is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 10, Type: models.ActorTeam},
		[]int64{invitee1.ID, invitee2.ID},
		"Join our team", "We build things")
	require.NoError(t, err)
	require.NotZero(t, invite.ID)

	stored, err := is.GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	assert.Equal(t, "Join our team", stored.Title)
	assert.Len(t, stored.Recipients, 2)
}

func TestCreateInviteValidation(t *testing.T) {
	stores := setupStores(t)
	is := NewInviteService(stores.Invites, stores.Users)
	ctx := context.Background()

	inviter := createUser(t, stores)

	// Приглашать можно только в организацию
	_, err := is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 5, Type: models.ActorUser},
		[]int64{inviter.ID}, "t", "m")
	assert.ErrorIs(t, err, ErrInviteEntityType)

	// Без получателей приглашение не создается
	_, err = is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 5, Type: models.ActorTeam},
		nil, "t", "m")
	assert.ErrorIs(t, err, ErrNoInvitees)

	// Несуществующий получатель
	_, err = is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 5, Type: models.ActorTeam},
		[]int64{99999}, "t", "m")
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestUpdateInvite(t *testing.T) {
	stores := setupStores(t)
	is := NewInviteService(stores.Invites, stores.Users)
	ctx := context.Background()

	inviter := createUser(t, stores)
	invitee := createUser(t, stores)

	invite, err := is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 3, Type: models.ActorBusiness},
		[]int64{invitee.ID}, "old title", "old message")
	require.NoError(t, err)

	updated, err := is.UpdateInvite(ctx, invite.ID, "new title", "new message")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new message", updated.Message)
}

func TestDeleteEntityInvites(t *testing.T) {
	stores := setupStores(t)
	is := NewInviteService(stores.Invites, stores.Users)
	ctx := context.Background()

	inviter := createUser(t, stores)
	invitee := createUser(t, stores)

	entity := models.ActorRef{ID: 8, Type: models.ActorPage}
	first, err := is.CreateInvite(ctx, inviter.ID, entity, []int64{invitee.ID}, "a", "m")
	require.NoError(t, err)
	_, err = is.CreateInvite(ctx, inviter.ID, entity, []int64{invitee.ID}, "b", "m")
	require.NoError(t, err)
	// Приглашение другой организации не затрагивается
	other, err := is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 9, Type: models.ActorPage}, []int64{invitee.ID}, "c", "m")
	require.NoError(t, err)

	invites, err := is.GetInvitesByEntity(ctx, entity.ID, entity.Type)
	require.NoError(t, err)
	assert.Len(t, invites, 2)

	deleted, err := is.DeleteEntityInvites(ctx, entity.ID, entity.Type)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = is.GetInviteByID(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = is.GetInviteByID(ctx, other.ID)
	assert.NoError(t, err)
}

func TestDeleteInviteByID(t *testing.T) {
	stores := setupStores(t)
	is := NewInviteService(stores.Invites, stores.Users)
	ctx := context.Background()

	inviter := createUser(t, stores)
	invitee := createUser(t, stores)

	invite, err := is.CreateInvite(ctx, inviter.ID,
		models.ActorRef{ID: 4, Type: models.ActorTeam}, []int64{invitee.ID}, "t", "m")
	require.NoError(t, err)

	_, err = is.DeleteInviteByID(ctx, invite.ID)
	require.NoError(t, err)

	_, err = is.GetInviteByID(ctx, invite.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
