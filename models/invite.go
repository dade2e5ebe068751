package models

import "time"

// Invite - приглашение присоединиться к организации (бизнесу, команде, странице)
type Invite struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InviterID  int64     `gorm:"index" json:"inviter_id"`
	EntityID   int64     `gorm:"index:idx_invite_entity" json:"entity_id"`
	EntityType ActorType `gorm:"size:20;index:idx_invite_entity" json:"entity_type"`
	Title      string    `gorm:"size:255" json:"title"`
	Message    string    `gorm:"type:text" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Recipients []InviteRecipient `gorm:"foreignKey:InviteID" json:"recipients,omitempty"`
}

func (Invite) TableName() string {
	return "invites"
}

// InviteRecipient - приглашенный пользователь
type InviteRecipient struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	InviteID int64 `gorm:"index" json:"invite_id"`
	UserID   int64 `gorm:"index" json:"user_id"`
}

func (InviteRecipient) TableName() string {
	return "invite_recipients"
}
