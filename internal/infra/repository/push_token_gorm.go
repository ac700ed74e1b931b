package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type PushTokenGormRepository struct {
	db *gorm.DB
}

func NewPushTokenGormRepository(db *gorm.DB) *PushTokenGormRepository {
	return &PushTokenGormRepository{db: db}
}

// Exists reports whether the (user, token) pair is already registered.
func (r *PushTokenGormRepository) Exists(
	ctx context.Context,
	userID string,
	token string,
) (bool, error) {

	var pt models.PushToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		First(&pt).Error

	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *PushTokenGormRepository) Create(
	ctx context.Context,
	pt *models.PushToken,
) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *PushTokenGormRepository) ListForUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]models.PushToken, error) {

	var tokens []models.PushToken
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(limit).
		Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
