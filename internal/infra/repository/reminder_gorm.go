package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

// DueForReminder lists appointments starting in [from, to) that still
// have a reminder pending. Terminal appointments are never reminded.
func (r *ReminderGormRepository) DueForReminder(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"reminder_sent = false AND status NOT IN ? AND scheduled_time >= ? AND scheduled_time < ?",
			[]string{string(domain.StatusCompleted), string(domain.StatusCancelled)},
			from, to,
		).
		Order("scheduled_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ReminderGormRepository) MarkReminderSent(
	ctx context.Context,
	appointmentID string,
	now time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(map[string]any{
			"reminder_sent": true,
			"updated_at":    now,
		}).Error
}

func (r *ReminderGormRepository) TokensForUser(
	ctx context.Context,
	userID string,
) ([]models.PushToken, error) {

	var tokens []models.PushToken
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
