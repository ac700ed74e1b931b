package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// --------------------------------------------------
// In-memory repository for use case tests
// --------------------------------------------------

type fakeRepo struct {
	shops    map[string]*models.Barbershop
	barbers  map[string]*models.Barber
	services map[string]*models.Service
	users    map[string]*models.User
	appts    map[string]*models.Appointment

	// order of insertion, to mimic storage order in listings
	apptOrder []string

	failCreate error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:    map[string]*models.Barbershop{},
		barbers:  map[string]*models.Barber{},
		services: map[string]*models.Service{},
		users:    map[string]*models.User{},
		appts:    map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) GetBarbershop(_ context.Context, id string) (*models.Barbershop, error) {
	if s, ok := r.shops[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrNotFound("barbershop")
}

func (r *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrNotFound("barber")
}

func (r *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrNotFound("service")
}

func (r *fakeRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrNotFound("user")
}

func (r *fakeRepo) CreateScheduled(_ context.Context, ap *models.Appointment) error {
	if r.failCreate != nil {
		return r.failCreate
	}

	for _, other := range r.appts {
		if other.BarberID != ap.BarberID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if other.ScheduledTime.Before(ap.EndTime) && other.EndTime.After(ap.ScheduledTime) {
			return httperr.ErrBusiness("scheduling_conflict")
		}
	}

	cp := *ap
	r.appts[ap.ID] = &cp
	r.apptOrder = append(r.apptOrder, ap.ID)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	if ap, ok := r.appts[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("appointment")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appts[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id string) error {
	if _, ok := r.appts[id]; !ok {
		return httperr.ErrNotFound("appointment")
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, id := range r.apptOrder {
		ap, ok := r.appts[id]
		if !ok {
			continue
		}
		if f.ShopID != "" && ap.ShopID != f.ShopID {
			continue
		}
		if f.BarberID != "" && ap.BarberID != f.BarberID {
			continue
		}
		if f.ClientUserID != "" && ap.ClientUserID != f.ClientUserID {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		out = append(out, *ap)
		if len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

// 2025-06-02 is a Monday.
var mondayNineAM = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func (r *fakeRepo) seedShop() (shopID, barberID, serviceID, clientID string) {
	shopID, barberID, serviceID, clientID = "shop_000000000001", "barber_000000000001", "service_000000000001", "user_000000000001"

	r.shops[shopID] = &models.Barbershop{ID: shopID, OwnerUserID: "user_owner0000001", Name: "Fade Factory"}
	r.barbers[barberID] = &models.Barber{
		ID:     barberID,
		ShopID: shopID,
		UserID: "user_barber000001",
		Availability: models.Availability{
			"monday": {"09:00-12:00"},
		},
		Status: models.BarberAvailable,
	}
	r.services[serviceID] = &models.Service{
		ID:          serviceID,
		ShopID:      shopID,
		Name:        "Haircut",
		Price:       30,
		DurationMin: 30,
	}
	r.users[clientID] = &models.User{ID: clientID, Email: "client@example.com", Name: "Client", Role: models.RoleClient}
	return
}
