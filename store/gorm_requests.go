package store

import (
	"context"
	"errors"
	"fmt"

	"bizlink/models"

	"gorm.io/gorm"
)

// GormRequestStore - хранилище запросов на отношения поверх gorm
type GormRequestStore struct {
	gormBase
}

func NewGormRequestStore(db *gorm.DB) *GormRequestStore {
	return &GormRequestStore{gormBase{db: db}}
}

func (s *GormRequestStore) Create(ctx context.Context, req *models.RelationRequest) error {
	if err := s.write(ctx).Create(req).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (s *GormRequestStore) GetByID(ctx context.Context, id int64) (*models.RelationRequest, error) {
	var req models.RelationRequest
	err := s.read(ctx).First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return &req, nil
}

func (s *GormRequestStore) Save(ctx context.Context, req *models.RelationRequest) error {
	if err := s.write(ctx).Save(req).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func (s *GormRequestStore) DeleteByID(ctx context.Context, id int64) error {
	res := s.write(ctx).Delete(&models.RelationRequest{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormRequestStore) List(ctx context.Context, filter RequestFilter) ([]models.RelationRequest, error) {
	query := s.read(ctx).Model(&models.RelationRequest{})

	switch filter.Direction {
	case DirectionSent:
		query = query.Where("requester_id = ? AND requester_type = ?", filter.UserID, models.ActorUser)
	case DirectionReceived:
		query = query.Where("requestee_id = ? AND requestee_type = ?", filter.UserID, models.ActorUser)
	case DirectionAny:
		query = query.Where(
			"(requester_id = ? AND requester_type = ?) OR (requestee_id = ? AND requestee_type = ?)",
			filter.UserID, models.ActorUser, filter.UserID, models.ActorUser,
		)
	default:
		return nil, fmt.Errorf("unknown request direction: %q", filter.Direction)
	}

	if filter.RequestType != nil {
		query = query.Where("request_type = ?", *filter.RequestType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var requests []models.RelationRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

var _ RequestStore = (*GormRequestStore)(nil)
