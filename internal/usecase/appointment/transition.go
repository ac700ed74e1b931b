package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type TransitionAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute moves the appointment to target. Transitioning into
// completed is the caller's signal that client history may now be
// recorded; this use case never records history itself.
func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	target domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(ap, target, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		UserID:   ap.ClientUserID,
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
