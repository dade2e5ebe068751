package models

import "time"

// Kind уведомления соответствует событию жизненного цикла запроса
const (
	NotifyRequestCreated  = "request_created"
	NotifyRequestAccepted = "request_accepted"
	NotifyRequestRejected = "request_rejected"
	NotifyRequestDeleted  = "request_deleted"
)

// Notification - уведомление пользователя о событии отношений
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index" json:"user_id"`
	Kind      string    `gorm:"size:40" json:"kind"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
