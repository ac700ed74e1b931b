package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		code string // expected business code, empty = allowed
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, ""},
		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, ""},
		{"in_progress to completed", StatusInProgress, StatusCompleted, ""},
		{"skip ahead", StatusConfirmed, StatusCompleted, ""},
		{"cancel from scheduled", StatusScheduled, StatusCancelled, ""},
		{"cancel from in_progress", StatusInProgress, StatusCancelled, ""},

		{"backwards", StatusInProgress, StatusConfirmed, "invalid_transition"},
		{"same status", StatusConfirmed, StatusConfirmed, "invalid_transition"},
		{"out of completed", StatusCompleted, StatusScheduled, "invalid_transition"},
		{"out of cancelled", StatusCancelled, StatusConfirmed, "invalid_transition"},
		{"cancel completed", StatusCompleted, StatusCancelled, "invalid_transition"},
		{"cancel cancelled", StatusCancelled, StatusCancelled, "invalid_transition"},
		{"unknown target", StatusScheduled, Status("archived"), "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusScheduled))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.False(t, IsTerminal(StatusInProgress))
}
