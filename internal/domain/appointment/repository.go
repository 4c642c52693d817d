package appointment

import (
	"context"
	"time"

	"github.com/groomshop/grooming-scheduler/internal/models"
)

// ListFilter narrows List results. Zero value lists everything.
type ListFilter struct {
	// Date matches on the UTC calendar date of scheduled_at.
	Date *time.Time
	// NameSubstring matches the owner's display name or username,
	// case-insensitively.
	NameSubstring string
}

type Repository interface {
	// -------- Appointment (create / read) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------

	// Mutate runs fn against the appointment row under a row-scoped
	// lock and persists the result, so concurrent writers cannot lose
	// each other's changes. fn errors abort without persisting.
	Mutate(
		ctx context.Context,
		id uint,
		fn func(ap *models.Appointment) error,
	) (*models.Appointment, error)

	Delete(
		ctx context.Context,
		id uint,
	) error
}
