package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to target, stamping updated_at and the
// status-specific timestamp. The appointment is not persisted here.
func Transition(ap *models.Appointment, target Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)
	ap.UpdatedAt = now

	switch target {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

// Cancel is Transition(cancelled); it never checks availability,
// cancelling cannot conflict with anything.
func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, now)
}

// CanRecordHistory reports whether client history may reference ap.
// History requires the visit to have at least started.
func CanRecordHistory(ap *models.Appointment) bool {
	s := Status(ap.Status)
	return s == StatusInProgress || s == StatusCompleted
}
