package store

import (
	"context"
	"errors"

	"bizlink/models"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates the attempted write would violate a uniqueness constraint.
	ErrConflict = errors.New("record conflict")
)

// RequestDirection задает направление выборки запросов относительно пользователя
type RequestDirection string

const (
	DirectionSent     RequestDirection = "sent"
	DirectionReceived RequestDirection = "received"
	// DirectionAny выбирает запросы, где пользователь стоит на любой стороне
	DirectionAny RequestDirection = "any"
)

// RequestFilter описывает выборку запросов по пользователю, типу и направлению.
// RequestType == nil означает оба типа.
type RequestFilter struct {
	UserID      int64
	RequestType *models.RequestType
	Direction   RequestDirection
	Status      *models.RequestStatus
}

// RequestStore - доступ к записям запросов на отношения
type RequestStore interface {
	Create(ctx context.Context, req *models.RelationRequest) error
	GetByID(ctx context.Context, id int64) (*models.RelationRequest, error)
	Save(ctx context.Context, req *models.RelationRequest) error
	DeleteByID(ctx context.Context, id int64) error
	List(ctx context.Context, filter RequestFilter) ([]models.RelationRequest, error)
}

// InviteStore - доступ к приглашениям в организации
type InviteStore interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetByID(ctx context.Context, id int64) (*models.Invite, error)
	ListByEntity(ctx context.Context, entityID int64, entityType models.ActorType) ([]models.Invite, error)
	Save(ctx context.Context, invite *models.Invite) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByEntity(ctx context.Context, entityID int64, entityType models.ActorType) (int64, error)
}

// UserStore - доступ к каталогу пользователей и токенам
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByNickname(ctx context.Context, nickname string) (*models.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.User, error)
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	CreateToken(ctx context.Context, token *models.UserTokens) error
	GetUserIDByToken(ctx context.Context, token string) (int64, error)
	DeleteTokens(ctx context.Context, userID int64) error
}

// NotificationStore - доступ к уведомлениям пользователей
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}
