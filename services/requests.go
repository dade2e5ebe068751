package services

import (
	"context"
	"fmt"

	"bizlink/models"
	"bizlink/store"
)

// RelationshipEvent - событие жизненного цикла запроса, уходящее в доставку
// уведомлений. UserID - получатель уведомления.
type RelationshipEvent struct {
	Kind        string             `json:"kind"`
	UserID      int64              `json:"user_id"`
	RequestID   int64              `json:"request_id"`
	Requester   models.ActorRef    `json:"requester"`
	Requestee   models.ActorRef    `json:"requestee"`
	RequestType models.RequestType `json:"request_type"`
}

// LifecycleNotifier доставляет события жизненного цикла; сбой доставки не
// считается сбоем самой операции
type LifecycleNotifier interface {
	Notify(ctx context.Context, event RelationshipEvent)
}

// RequestService управляет жизненным циклом запросов на отношения
type RequestService struct {
	requests store.RequestStore
	users    store.UserStore
	notifier LifecycleNotifier
}

// NewRequestService создает сервис; notifier может быть nil
func NewRequestService(requests store.RequestStore, users store.UserStore, notifier LifecycleNotifier) *RequestService {
	return &RequestService{requests: requests, users: users, notifier: notifier}
}

// SendRequest создает запрос на отношение в статусе pending.
// Friend-запросы допустимы только между пользователями; запросы к самому
// себе отклоняются. Повторный запрос той же пары не отклоняется - уникальность
// пары не контролируется.
func (rs *RequestService) SendRequest(ctx context.Context, requester, requestee models.ActorRef, reqType models.RequestType) (*models.RelationRequest, error) {
	if requester.ID == requestee.ID && requester.Type == requestee.Type {
		return nil, ErrSelfRequest
	}
	if reqType == models.RequestFriend {
		if requester.Type != models.ActorUser || requestee.Type != models.ActorUser {
			return nil, ErrFriendActorType
		}
	}

	// Для пользовательских акторов проверяем существование профилей
	userIDs := make([]int64, 0, 2)
	if requester.Type == models.ActorUser {
		userIDs = append(userIDs, requester.ID)
	}
	if requestee.Type == models.ActorUser {
		userIDs = append(userIDs, requestee.ID)
	}
	if len(userIDs) > 0 {
		count, err := rs.users.CountByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("error checking users: %w", err)
		}
		if count != int64(len(userIDs)) {
			return nil, ErrActorNotFound
		}
	}

	request := &models.RelationRequest{
		RequesterID:   requester.ID,
		RequesterType: requester.Type,
		RequesteeID:   requestee.ID,
		RequesteeType: requestee.Type,
		RequestType:   reqType,
		Status:        models.StatusPending,
	}
	if err := rs.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	rs.notify(ctx, models.NotifyRequestCreated, request, request.Requestee())
	return request, nil
}

// SendFollowRequest создает follow-запрос между акторами любых типов
func (rs *RequestService) SendFollowRequest(ctx context.Context, requester, requestee models.ActorRef) (*models.RelationRequest, error) {
	return rs.SendRequest(ctx, requester, requestee, models.RequestFollow)
}

// SendFriendRequest создает friend-запрос между двумя пользователями
func (rs *RequestService) SendFriendRequest(ctx context.Context, requesterID, requesteeID int64) (*models.RelationRequest, error) {
	return rs.SendRequest(ctx,
		models.ActorRef{ID: requesterID, Type: models.ActorUser},
		models.ActorRef{ID: requesteeID, Type: models.ActorUser},
		models.RequestFriend,
	)
}

// GetRequestByID возвращает запрос или store.ErrNotFound
func (rs *RequestService) GetRequestByID(ctx context.Context, id int64) (*models.RelationRequest, error) {
	return rs.requests.GetByID(ctx, id)
}

// UpdateRequestStatus переводит запрос в новый статус. Разрешены только
// переходы pending -> accepted и pending -> rejected. declaredType
// поддерживает переквалификацию follow -> friend при принятии, если обе
// стороны - пользователи.
func (rs *RequestService) UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus, declaredType *models.RequestType) (*models.RelationRequest, error) {
	request, err := rs.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Диспетчеризация строго по типу записи; неизвестный тип - ошибка,
	// а не откат к follow-обработчику
	switch request.RequestType {
	case models.RequestFollow:
		if declaredType != nil && *declaredType == models.RequestFriend {
			if request.RequesterType != models.ActorUser || request.RequesteeType != models.ActorUser {
				return nil, ErrFriendActorType
			}
			request.RequestType = models.RequestFriend
		}
	case models.RequestFriend:
		if declaredType != nil && *declaredType == models.RequestFollow {
			return nil, fmt.Errorf("cannot reclassify friend request: %w", ErrIllegalTransition)
		}
	default:
		return nil, fmt.Errorf("unknown request type %q on record %d", request.RequestType, request.ID)
	}

	if !request.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, request.Status, status)
	}
	request.Status = status

	if err := rs.requests.Save(ctx, request); err != nil {
		return nil, err
	}

	switch status {
	case models.StatusAccepted:
		rs.notify(ctx, models.NotifyRequestAccepted, request, request.Requester())
	case models.StatusRejected:
		rs.notify(ctx, models.NotifyRequestRejected, request, request.Requester())
	}
	return request, nil
}

// DeleteRequestByID жестко удаляет запрос и возвращает удаленную запись
func (rs *RequestService) DeleteRequestByID(ctx context.Context, id int64) (*models.RelationRequest, error) {
	request, err := rs.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rs.requests.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	rs.notify(ctx, models.NotifyRequestDeleted, request, request.Requestee())
	return request, nil
}

// ListRequestsForUser возвращает запросы пользователя по типу и направлению.
// reqType == nil означает оба типа.
func (rs *RequestService) ListRequestsForUser(ctx context.Context, userID int64, reqType *models.RequestType, direction store.RequestDirection) ([]models.RelationRequest, error) {
	return rs.requests.List(ctx, store.RequestFilter{
		UserID:      userID,
		RequestType: reqType,
		Direction:   direction,
	})
}

// GetFollowRequestsForUser - входящие follow-запросы
func (rs *RequestService) GetFollowRequestsForUser(ctx context.Context, userID int64) ([]models.RelationRequest, error) {
	t := models.RequestFollow
	return rs.ListRequestsForUser(ctx, userID, &t, store.DirectionReceived)
}

// GetSentFollowRequestsForUser - исходящие follow-запросы
func (rs *RequestService) GetSentFollowRequestsForUser(ctx context.Context, userID int64) ([]models.RelationRequest, error) {
	t := models.RequestFollow
	return rs.ListRequestsForUser(ctx, userID, &t, store.DirectionSent)
}

// GetFriendRequestsForUser - входящие friend-запросы
func (rs *RequestService) GetFriendRequestsForUser(ctx context.Context, userID int64) ([]models.RelationRequest, error) {
	t := models.RequestFriend
	return rs.ListRequestsForUser(ctx, userID, &t, store.DirectionReceived)
}

// GetSentFriendRequestsForUser - исходящие friend-запросы
func (rs *RequestService) GetSentFriendRequestsForUser(ctx context.Context, userID int64) ([]models.RelationRequest, error) {
	t := models.RequestFriend
	return rs.ListRequestsForUser(ctx, userID, &t, store.DirectionSent)
}

func (rs *RequestService) notify(ctx context.Context, kind string, request *models.RelationRequest, recipient models.ActorRef) {
	// Уведомления доставляются только пользователям
	if rs.notifier == nil || recipient.Type != models.ActorUser {
		return
	}
	rs.notifier.Notify(ctx, RelationshipEvent{
		Kind:        kind,
		UserID:      recipient.ID,
		RequestID:   request.ID,
		Requester:   request.Requester(),
		Requestee:   request.Requestee(),
		RequestType: request.RequestType,
	})
}
