package store

import (
	"context"
	"errors"
	"fmt"

	"bizlink/models"

	"gorm.io/gorm"
)

// GormUserStore - каталог пользователей и токенов поверх gorm
type GormUserStore struct {
	gormBase
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{gormBase{db: db}}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.write(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.read(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	var user models.User
	err := s.read(ctx).Where("nickname = ?", nickname).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by nickname: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) ListByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := s.read(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *GormUserStore) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	err := s.read(ctx).Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (s *GormUserStore) CreateToken(ctx context.Context, token *models.UserTokens) error {
	if err := s.write(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

func (s *GormUserStore) GetUserIDByToken(ctx context.Context, token string) (int64, error) {
	var record models.UserTokens
	err := s.read(ctx).Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up token: %w", err)
	}
	return record.UserID, nil
}

func (s *GormUserStore) DeleteTokens(ctx context.Context, userID int64) error {
	err := s.write(ctx).Where("user_id = ?", userID).Delete(&models.UserTokens{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}
	return nil
}

var _ UserStore = (*GormUserStore)(nil)
