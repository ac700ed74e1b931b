package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newCreateUC(repo domain.Repository) *CreateAppointment {
	return NewCreateAppointment(repo, clock.Fixed(testNow), audit.NewNop())
}

func TestCreate_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateInput{
		ShopID:        shopID,
		BarberID:      barberID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM,
		Notes:         "first visit",
	})
	require.NoError(t, err)

	assert.True(t, len(ap.ID) > 5 && ap.ID[:5] == "appt_")
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, mondayNineAM, ap.ScheduledTime)
	assert.Equal(t, mondayNineAM.Add(30*time.Minute), ap.EndTime)
	assert.False(t, ap.ReminderSent)
	assert.Equal(t, testNow, ap.CreatedAt)
	assert.Equal(t, testNow, ap.UpdatedAt)

	// round-trip by id
	got, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, *ap, *got)
}

func TestCreate_UnresolvedReferences(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)

	base := CreateInput{
		ShopID:        shopID,
		BarberID:      barberID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM,
	}

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		entity string
	}{
		{"missing shop", func(in *CreateInput) { in.ShopID = "shop_nope00000000" }, "barbershop"},
		{"missing barber", func(in *CreateInput) { in.BarberID = "barber_nope000000" }, "barber"},
		{"missing service", func(in *CreateInput) { in.ServiceID = "service_nope00000" }, "service"},
		{"missing client", func(in *CreateInput) { in.ClientUserID = "user_nope00000000" }, "user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)

			var nf httperr.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tc.entity, nf.Entity)
		})
	}
}

func TestCreate_BarberFromAnotherShop(t *testing.T) {
	repo := newFakeRepo()
	shopID, _, serviceID, clientID := repo.seedShop()

	stray := &models.Barber{
		ID:           "barber_stray00001",
		ShopID:       "shop_other0000001",
		Availability: models.Availability{"monday": {"09:00-12:00"}},
	}
	repo.barbers[stray.ID] = stray

	uc := newCreateUC(repo)
	_, err := uc.Execute(context.Background(), CreateInput{
		ShopID:        shopID,
		BarberID:      stray.ID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM,
	})

	assert.True(t, httperr.IsBusiness(err, "barber_not_in_shop"), "got %v", err)
}

func TestCreate_OutsideAvailability(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)

	// barber works monday 09:00-12:00; 13:00 is outside
	_, err := uc.Execute(context.Background(), CreateInput{
		ShopID:        shopID,
		BarberID:      barberID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM.Add(4 * time.Hour),
	})

	assert.True(t, httperr.IsBusiness(err, "outside_availability"), "got %v", err)
}

func TestCreate_SchedulingConflict(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)

	in := CreateInput{
		ShopID:        shopID,
		BarberID:      barberID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM,
	}
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// overlaps [09:00, 09:30)
	in.ScheduledTime = mondayNineAM.Add(15 * time.Minute)
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "scheduling_conflict"), "got %v", err)

	// back to back is fine
	in.ScheduledTime = mondayNineAM.Add(30 * time.Minute)
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreate_CancelledDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)
	cancelUC := NewCancelAppointment(repo, clock.Fixed(testNow), audit.NewNop())

	in := CreateInput{
		ShopID:        shopID,
		BarberID:      barberID,
		ClientUserID:  clientID,
		ServiceID:     serviceID,
		ScheduledTime: mondayNineAM,
	}
	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	// same slot is free again once the first booking is cancelled
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreate_ZeroScheduledTime(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, serviceID, clientID := repo.seedShop()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateInput{
		ShopID:       shopID,
		BarberID:     barberID,
		ClientUserID: clientID,
		ServiceID:    serviceID,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_scheduled_time"), "got %v", err)
}
