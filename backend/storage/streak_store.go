package storage

import (
	"context"
	"errors"
	"fmt"

	"wellspring/backend/models"
	"wellspring/backend/services"

	"gorm.io/gorm"
)

// GormStreakStore implements services.StreakStore on the shared database.
type GormStreakStore struct {
	DB *gorm.DB
}

func NewGormStreakStore(db *gorm.DB) *GormStreakStore {
	return &GormStreakStore{DB: db}
}

func (s *GormStreakStore) FindByUser(ctx context.Context, userID uint) (*models.StreakRecord, error) {
	var rec models.StreakRecord
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	return &rec, nil
}

func (s *GormStreakStore) Create(ctx context.Context, rec *models.StreakRecord) error {
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *GormStreakStore) Update(ctx context.Context, rec *models.StreakRecord) error {
	if err := s.DB.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	return nil
}
