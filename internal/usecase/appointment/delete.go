package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
)

// DeleteAppointment is hard removal for administrative correction.
// Unlike cancel it leaves no record behind; client history referencing
// the appointment is deliberately untouched.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		UserID:   ap.ClientUserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return nil
}
