package reminder

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// APPOINTMENT REMINDERS
// ======================================================

type Repository interface {
	DueForReminder(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, appointmentID string, now time.Time) error
	TokensForUser(ctx context.Context, userID string) ([]models.PushToken, error)
}

type Worker struct {
	repo  Repository
	clock clock.Clock
	log   *zap.Logger
	cron  *cron.Cron
}

func NewWorker(repo Repository, clk clock.Clock, log *zap.Logger) *Worker {
	return &Worker{
		repo:  repo,
		clock: clk,
		log:   log,
		cron:  cron.New(),
	}
}

// Start schedules the sweep every minute. The push provider itself is
// an external collaborator; here each due token only gets logged and
// the appointment marked so it is never reminded twice.
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc("* * * * *", w.sweep); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info("reminder worker started")
	return nil
}

func (w *Worker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *Worker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := w.clock.Now()
	due, err := w.repo.DueForReminder(ctx, now, now.Add(time.Hour))
	if err != nil {
		w.log.Error("reminder sweep failed", zap.Error(err))
		return
	}

	for _, ap := range due {
		w.notify(ctx, &ap, now)
	}
}

func (w *Worker) notify(ctx context.Context, ap *models.Appointment, now time.Time) {
	tokens, err := w.repo.TokensForUser(ctx, ap.ClientUserID)
	if err != nil {
		w.log.Error("reminder token lookup failed",
			zap.String("appointment_id", ap.ID),
			zap.Error(err),
		)
		return
	}

	for _, pt := range tokens {
		w.log.Info("appointment reminder",
			zap.String("appointment_id", ap.ID),
			zap.String("user_id", ap.ClientUserID),
			zap.String("platform", pt.Platform),
			zap.Time("scheduled_time", ap.ScheduledTime),
		)
	}

	if err := w.repo.MarkReminderSent(ctx, ap.ID, now); err != nil {
		w.log.Error("reminder mark failed",
			zap.String("appointment_id", ap.ID),
			zap.Error(err),
		)
	}
}
