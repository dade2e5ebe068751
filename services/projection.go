package services

import (
	"context"
	"fmt"
	"sync"

	"bizlink/models"
	"bizlink/store"
)

// RelationshipSummary - сводка отношений пользователя
type RelationshipSummary struct {
	User           *models.User       `json:"user"`
	FollowerCount  int                `json:"follower_count"`
	FollowingCount int                `json:"following_count"`
	FriendCount    int                `json:"friend_count"`
	Followers      []models.ActorInfo `json:"followers"`
	Following      []models.ActorInfo `json:"following"`
	Friends        []models.ActorInfo `json:"friends"`
}

// RelationshipService строит проекции отношений (подписчики, подписки,
// друзья) из принятых запросов. Проекции не кешируются и пересчитываются
// на каждый вызов.
type RelationshipService struct {
	requests store.RequestStore
	users    store.UserStore
}

func NewRelationshipService(requests store.RequestStore, users store.UserStore) *RelationshipService {
	return &RelationshipService{requests: requests, users: users}
}

// Followers возвращает акторов, чьи follow-запросы к пользователю приняты
func (ps *RelationshipService) Followers(ctx context.Context, userID int64) ([]models.ActorInfo, error) {
	return ps.counterparts(ctx, userID, models.RequestFollow, store.DirectionReceived)
}

// Following возвращает акторов, чьим follow-запросам от пользователя дан accept
func (ps *RelationshipService) Following(ctx context.Context, userID int64) ([]models.ActorInfo, error) {
	return ps.counterparts(ctx, userID, models.RequestFollow, store.DirectionSent)
}

// Friends возвращает пользователей, с которыми принята дружба (любая сторона)
func (ps *RelationshipService) Friends(ctx context.Context, userID int64) ([]models.ActorInfo, error) {
	return ps.counterparts(ctx, userID, models.RequestFriend, store.DirectionAny)
}

// Summary собирает профиль и все три списка; независимые чтения выполняются
// конкурентно и объединяются перед ответом
func (ps *RelationshipService) Summary(ctx context.Context, userID int64) (*RelationshipSummary, error) {
	var (
		wg        sync.WaitGroup
		user      *models.User
		followers []models.ActorInfo
		following []models.ActorInfo
		friends   []models.ActorInfo
		errs      [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		user, errs[0] = ps.users.GetByID(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		followers, errs[1] = ps.Followers(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		following, errs[2] = ps.Following(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		friends, errs[3] = ps.Friends(ctx, userID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &RelationshipSummary{
		User:           user,
		FollowerCount:  len(followers),
		FollowingCount: len(following),
		FriendCount:    len(friends),
		Followers:      followers,
		Following:      following,
		Friends:        friends,
	}, nil
}

// counterparts выбирает принятые запросы и возвращает контрагентов,
// обогащая акторов типа user профильными полями
func (ps *RelationshipService) counterparts(ctx context.Context, userID int64, reqType models.RequestType, direction store.RequestDirection) ([]models.ActorInfo, error) {
	accepted := models.StatusAccepted
	requests, err := ps.requests.List(ctx, store.RequestFilter{
		UserID:      userID,
		RequestType: &reqType,
		Direction:   direction,
		Status:      &accepted,
	})
	if err != nil {
		return nil, err
	}

	refs := make([]models.ActorRef, 0, len(requests))
	for i := range requests {
		refs = append(refs, counterpartOf(&requests[i], userID, direction))
	}

	// Профили для контрагентов-пользователей подгружаются одним запросом
	userIDs := make([]int64, 0, len(refs))
	for _, ref := range refs {
		if ref.Type == models.ActorUser {
			userIDs = append(userIDs, ref.ID)
		}
	}
	profiles := make(map[int64]models.User, len(userIDs))
	if len(userIDs) > 0 {
		users, err := ps.users.ListByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve counterpart profiles: %w", err)
		}
		for _, u := range users {
			profiles[u.ID] = u
		}
	}

	actors := make([]models.ActorInfo, 0, len(refs))
	for _, ref := range refs {
		if ref.Type == models.ActorUser {
			if u, ok := profiles[ref.ID]; ok {
				actors = append(actors, u.ActorInfo())
				continue
			}
		}
		actors = append(actors, models.ActorInfo{ID: ref.ID, Type: ref.Type})
	}
	return actors, nil
}

// counterpartOf возвращает сторону запроса, противоположную пользователю
func counterpartOf(req *models.RelationRequest, userID int64, direction store.RequestDirection) models.ActorRef {
	switch direction {
	case store.DirectionSent:
		return req.Requestee()
	case store.DirectionReceived:
		return req.Requester()
	default:
		if req.RequesterID == userID && req.RequesterType == models.ActorUser {
			return req.Requestee()
		}
		return req.Requester()
	}
}
