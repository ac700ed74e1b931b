package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// CancelAppointment is Transition(cancelled) under its own name:
// cancelling preserves the record and never re-checks availability.
type CancelAppointment struct {
	transition *TransitionAppointment
}

func NewCancelAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		transition: NewTransitionAppointment(repo, clk, audit),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.transition.Execute(ctx, appointmentID, domain.StatusCancelled)
}
