package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ShopID       string
	BarberID     string
	ClientUserID string
	ServiceID    string

	ScheduledTime time.Time
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	if in.ScheduledTime.IsZero() {
		return nil, httperr.ErrBusiness("invalid_scheduled_time")
	}

	shop, err := uc.repo.GetBarbershop(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber.ShopID != shop.ID {
		return nil, httperr.ErrBusiness("barber_not_in_shop")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service.ShopID != shop.ID {
		return nil, httperr.ErrNotFound("service")
	}

	if _, err := uc.repo.GetUser(ctx, in.ClientUserID); err != nil {
		return nil, err
	}

	start := in.ScheduledTime.UTC()
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	if !domain.WithinAvailability(barber.Availability, start, end) {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	now := uc.clock.Now()
	ap := &models.Appointment{
		ID:            ids.NewAppointment(),
		ShopID:        shop.ID,
		BarberID:      barber.ID,
		ClientUserID:  in.ClientUserID,
		ServiceID:     service.ID,
		ScheduledTime: start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		ReminderSent:  false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// conflict check + insert are one atomic unit per barber
	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   in.ClientUserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
