package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ListFilter is an implicit conjunction; empty fields are omitted from
// the query, never matched as wildcards.
type ListFilter struct {
	ShopID       string
	BarberID     string
	ClientUserID string
	Status       string
	Limit        int
}

type Repository interface {
	// -------- Referenced entities --------
	GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetUser(ctx context.Context, id string) (*models.User, error)

	// -------- Appointment (create / conflict) --------

	// CreateScheduled inserts ap and re-checks the no-overlap rule for
	// ap.BarberID inside one transaction, serialized per barber.
	// Returns the scheduling_conflict business error on overlap.
	CreateScheduled(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change / removal) --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error

	// -------- Listing --------
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
}
