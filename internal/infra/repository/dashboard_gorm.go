package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// CountForShop computes all four dashboard counters inside one read
// transaction so they describe a single snapshot. Any failure aborts
// the whole read; partial counters are never returned.
func (r *DashboardGormRepository) CountForShop(
	ctx context.Context,
	shopID string,
	dayStart time.Time,
	dayEnd time.Time,
) (total, completed, barbers, today int64, err error) {

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Model(&models.Appointment{}).
			Where("shop_id = ?", shopID).
			Count(&total).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Appointment{}).
			Where("shop_id = ? AND status = ?", shopID, string(domain.StatusCompleted)).
			Count(&completed).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Barber{}).
			Where("shop_id = ?", shopID).
			Count(&barbers).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Appointment{}).
			Where(
				"shop_id = ? AND scheduled_time >= ? AND scheduled_time < ?",
				shopID, dayStart, dayEnd,
			).
			Count(&today).Error
	})

	if err != nil {
		return 0, 0, 0, 0, err
	}
	return total, completed, barbers, today, nil
}
