package services

import (
	"context"
	"fmt"

	"bizlink/models"
	"bizlink/store"
)

// InviteService управляет приглашениями присоединиться к организациям
// (бизнесам, командам, страницам)
type InviteService struct {
	invites store.InviteStore
	users   store.UserStore
}

func NewInviteService(invites store.InviteStore, users store.UserStore) *InviteService {
	return &InviteService{invites: invites, users: users}
}

// CreateInvite создает приглашение от inviter к набору пользователей
func (is *InviteService) CreateInvite(ctx context.Context, inviterID int64, entity models.ActorRef, inviteeIDs []int64, title, message string) (*models.Invite, error) {
	if entity.Type == models.ActorUser {
		return nil, fmt.Errorf("%w, got %q", ErrInviteEntityType, entity.Type)
	}
	if len(inviteeIDs) == 0 {
		return nil, ErrNoInvitees
	}

	count, err := is.users.CountByIDs(ctx, inviteeIDs)
	if err != nil {
		return nil, fmt.Errorf("error checking invitees: %w", err)
	}
	if count != int64(len(inviteeIDs)) {
		return nil, ErrActorNotFound
	}

	invite := &models.Invite{
		InviterID:  inviterID,
		EntityID:   entity.ID,
		EntityType: entity.Type,
		Title:      title,
		Message:    message,
	}
	for _, id := range inviteeIDs {
		invite.Recipients = append(invite.Recipients, models.InviteRecipient{UserID: id})
	}
	if err := is.invites.Create(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// GetInviteByID возвращает приглашение с получателями
func (is *InviteService) GetInviteByID(ctx context.Context, id int64) (*models.Invite, error) {
	return is.invites.GetByID(ctx, id)
}

// GetInvitesByEntity возвращает приглашения организации
func (is *InviteService) GetInvitesByEntity(ctx context.Context, entityID int64, entityType models.ActorType) ([]models.Invite, error) {
	return is.invites.ListByEntity(ctx, entityID, entityType)
}

// UpdateInvite обновляет заголовок и текст приглашения
func (is *InviteService) UpdateInvite(ctx context.Context, id int64, title, message string) (*models.Invite, error) {
	invite, err := is.invites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	invite.Title = title
	invite.Message = message
	if err := is.invites.Save(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// DeleteInviteByID удаляет приглашение вместе с получателями
func (is *InviteService) DeleteInviteByID(ctx context.Context, id int64) (*models.Invite, error) {
	invite, err := is.invites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := is.invites.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return invite, nil
}

// DeleteEntityInvites массово удаляет приглашения организации
func (is *InviteService) DeleteEntityInvites(ctx context.Context, entityID int64, entityType models.ActorType) (int64, error) {
	return is.invites.DeleteByEntity(ctx, entityID, entityType)
}
