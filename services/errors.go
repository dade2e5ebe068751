package services

import "errors"

// Ошибки валидации жизненного цикла запросов; обработчики транслируют их
// в 400-коды, ошибки хранилища (store.ErrNotFound и т.д.) - в 404/409
var (
	ErrSelfRequest       = errors.New("requester and requestee must differ")
	ErrFriendActorType   = errors.New("friend requests are only allowed between users")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrActorNotFound     = errors.New("one or both actors do not exist")
	ErrInviteEntityType  = errors.New("invite entity must be an organization")
	ErrNoInvitees        = errors.New("invite requires at least one invitee")
)
