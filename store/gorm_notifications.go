package store

import (
	"context"
	"fmt"

	"bizlink/models"

	"gorm.io/gorm"
)

// GormNotificationStore - хранилище уведомлений поверх gorm
type GormNotificationStore struct {
	gormBase
}

func NewGormNotificationStore(db *gorm.DB) *GormNotificationStore {
	return &GormNotificationStore{gormBase{db: db}}
}

func (s *GormNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if err := s.write(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *GormNotificationStore) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var notifications []models.Notification
	err := s.read(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *GormNotificationStore) MarkRead(ctx context.Context, userID, notificationID int64) error {
	res := s.write(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ NotificationStore = (*GormNotificationStore)(nil)
