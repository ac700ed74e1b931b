package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type fakeReminderRepo struct {
	due    []models.Appointment
	tokens map[string][]models.PushToken
	marked []string
}

func (f *fakeReminderRepo) DueForReminder(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.due {
		if !ap.ScheduledTime.Before(from) && ap.ScheduledTime.Before(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) MarkReminderSent(_ context.Context, id string, _ time.Time) error {
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeReminderRepo) TokensForUser(_ context.Context, userID string) ([]models.PushToken, error) {
	return f.tokens[userID], nil
}

func TestSweep_MarksOnlyUpcomingHour(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeReminderRepo{
		due: []models.Appointment{
			{ID: "appt_soon", ClientUserID: "user_a", ScheduledTime: now.Add(30 * time.Minute)},
			{ID: "appt_later", ClientUserID: "user_a", ScheduledTime: now.Add(3 * time.Hour)},
		},
		tokens: map[string][]models.PushToken{
			"user_a": {{UserID: "user_a", Token: "tok", Platform: models.PlatformIOS}},
		},
	}

	w := NewWorker(repo, clock.Fixed(now), zap.NewNop())
	w.sweep()

	assert.Equal(t, []string{"appt_soon"}, repo.marked)
}

func TestSweep_NoTokensStillMarks(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	repo := &fakeReminderRepo{
		due: []models.Appointment{
			{ID: "appt_1", ClientUserID: "user_quiet", ScheduledTime: now.Add(10 * time.Minute)},
		},
		tokens: map[string][]models.PushToken{},
	}

	w := NewWorker(repo, clock.Fixed(now), zap.NewNop())
	w.sweep()

	assert.Equal(t, []string{"appt_1"}, repo.marked)
}
