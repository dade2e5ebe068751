package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormBase дает хранилищам разделение чтения и записи через dbresolver
// (реплики для чтения, мастер для записи)
type gormBase struct {
	db *gorm.DB
}

func (b gormBase) read(ctx context.Context) *gorm.DB {
	return b.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func (b gormBase) write(ctx context.Context) *gorm.DB {
	return b.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// Stores объединяет gorm-реализации всех хранилищ
type Stores struct {
	Requests      RequestStore
	Invites       InviteStore
	Users         UserStore
	Notifications NotificationStore
}

// NewGormStores создает хранилища поверх общего подключения
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Requests:      NewGormRequestStore(db),
		Invites:       NewGormInviteStore(db),
		Users:         NewGormUserStore(db),
		Notifications: NewGormNotificationStore(db),
	}
}
