package models

import "fmt"

// ActorType - тип участника отношений: пользователь, бизнес, команда или страница
type ActorType string

const (
	ActorUser     ActorType = "user"
	ActorBusiness ActorType = "business"
	ActorTeam     ActorType = "team"
	ActorPage     ActorType = "page"
)

// ParseActorType проверяет и нормализует тип актора
func ParseActorType(s string) (ActorType, error) {
	switch ActorType(s) {
	case ActorUser, ActorBusiness, ActorTeam, ActorPage:
		return ActorType(s), nil
	}
	return "", fmt.Errorf("unknown actor type: %q", s)
}

// ActorRef - ссылка на актора (id + тип)
type ActorRef struct {
	ID   int64     `json:"id"`
	Type ActorType `json:"type"`
}

// ActorInfo - актор в проекции отношений; профильные поля заполняются
// только для акторов типа user
type ActorInfo struct {
	ID        int64     `json:"id"`
	Type      ActorType `json:"type"`
	Nickname  string    `json:"nickname,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
}
