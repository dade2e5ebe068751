package store

import (
	"context"
	"errors"
	"fmt"

	"bizlink/models"

	"gorm.io/gorm"
)

// GormInviteStore - хранилище приглашений поверх gorm
type GormInviteStore struct {
	gormBase
}

func NewGormInviteStore(db *gorm.DB) *GormInviteStore {
	return &GormInviteStore{gormBase{db: db}}
}

func (s *GormInviteStore) Create(ctx context.Context, invite *models.Invite) error {
	if err := s.write(ctx).Create(invite).Error; err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

func (s *GormInviteStore) GetByID(ctx context.Context, id int64) (*models.Invite, error) {
	var invite models.Invite
	err := s.read(ctx).Preload("Recipients").First(&invite, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	return &invite, nil
}

func (s *GormInviteStore) ListByEntity(ctx context.Context, entityID int64, entityType models.ActorType) ([]models.Invite, error) {
	var invites []models.Invite
	err := s.read(ctx).
		Preload("Recipients").
		Where("entity_id = ? AND entity_type = ?", entityID, entityType).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}

func (s *GormInviteStore) Save(ctx context.Context, invite *models.Invite) error {
	if err := s.write(ctx).Save(invite).Error; err != nil {
		return fmt.Errorf("failed to save invite: %w", err)
	}
	return nil
}

func (s *GormInviteStore) DeleteByID(ctx context.Context, id int64) error {
	err := s.write(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Invite{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("invite_id = ?", id).Delete(&models.InviteRecipient{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}

func (s *GormInviteStore) DeleteByEntity(ctx context.Context, entityID int64, entityType models.ActorType) (int64, error) {
	var deleted int64
	err := s.write(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&models.Invite{}).
			Where("entity_id = ? AND entity_type = ?", entityID, entityType).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("invite_id IN ?", ids).Delete(&models.InviteRecipient{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Invite{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete invites for entity: %w", err)
	}
	return deleted, nil
}

var _ InviteStore = (*GormInviteStore)(nil)
