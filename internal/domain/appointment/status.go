package appointment

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// rank orders the forward path; cancelled sits outside it.
var rank = map[Status]int{
	StatusScheduled:  0,
	StatusConfirmed:  1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

func IsValid(s Status) bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := rank[s]
	return ok
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition validates a status change. Forward moves may skip steps
// (confirmed -> completed is fine); cancelled is reachable from any
// non-terminal state; nothing leaves a terminal state.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	if IsTerminal(from) {
		return httperr.ErrBusiness("invalid_transition")
	}

	if to == StatusCancelled {
		return nil
	}

	if rank[to] <= rank[from] {
		return httperr.ErrBusiness("invalid_transition")
	}

	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
