package models

import (
	"fmt"
	"time"
)

// RequestType - тип запроса на отношение
type RequestType string

const (
	RequestFollow RequestType = "follow"
	RequestFriend RequestType = "friend"
)

// ParseRequestType проверяет тип запроса; неизвестные типы отклоняются явно,
// без отката к follow-обработчику
func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestFollow, RequestFriend:
		return RequestType(s), nil
	}
	return "", fmt.Errorf("unknown request type: %q", s)
}

// RequestStatus - статус запроса
// Легальные переходы: pending -> accepted, pending -> rejected
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("unknown request status: %q", s)
}

// CanTransition сообщает, разрешен ли переход из текущего статуса в указанный.
// Из accepted и rejected переходов нет - только удаление записи.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return s == StatusPending && (to == StatusAccepted || to == StatusRejected)
}

// RelationRequest - запрос на отношение между двумя акторами.
// Friend-запросы допустимы только между пользователями, follow - между любыми
// типами акторов.
type RelationRequest struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	RequesterID   int64         `gorm:"index:idx_requester" json:"requester_id"`
	RequesterType ActorType     `gorm:"size:20;index:idx_requester" json:"requester_type"`
	RequesteeID   int64         `gorm:"index:idx_requestee" json:"requestee_id"`
	RequesteeType ActorType     `gorm:"size:20;index:idx_requestee" json:"requestee_type"`
	RequestType   RequestType   `gorm:"size:20;index" json:"request_type"`
	Status        RequestStatus `gorm:"size:20;index" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (RelationRequest) TableName() string {
	return "relation_requests"
}

// Requester возвращает ссылку на инициатора запроса
func (r *RelationRequest) Requester() ActorRef {
	return ActorRef{ID: r.RequesterID, Type: r.RequesterType}
}

// Requestee возвращает ссылку на получателя запроса
func (r *RelationRequest) Requestee() ActorRef {
	return ActorRef{ID: r.RequesteeID, Type: r.RequesteeType}
}
