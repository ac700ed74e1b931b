package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ClientHistoryGormRepository struct {
	db *gorm.DB
}

func NewClientHistoryGormRepository(db *gorm.DB) *ClientHistoryGormRepository {
	return &ClientHistoryGormRepository{db: db}
}

func (r *ClientHistoryGormRepository) Create(
	ctx context.Context,
	h *models.ClientHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ClientHistoryGormRepository) ListForClient(
	ctx context.Context,
	clientUserID string,
	limit int,
) ([]models.ClientHistory, error) {

	var records []models.ClientHistory
	if err := r.db.WithContext(ctx).
		Where("client_user_id = ?", clientUserID).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
