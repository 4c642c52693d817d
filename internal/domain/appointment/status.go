package appointment

import "github.com/groomshop/grooming-scheduler/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", apperr.InvalidArgument("invalid_status", "Status must be Pending, Completed or Cancelled.")
}

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanEdit rejects edits to completed appointments. Cancelled ones may
// still be rebooked to another type or date.
func CanEdit(current Status) error {
	if current == StatusCompleted {
		return apperr.InvalidState("already_completed", "Completed appointments cannot be edited.")
	}
	return nil
}

// CanTransition rejects any transition out of a terminal status.
func CanTransition(current, target Status) error {
	if current.Terminal() && current != target {
		return apperr.InvalidState("terminal_status", "Appointment status can no longer change.")
	}
	return nil
}
