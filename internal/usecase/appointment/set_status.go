package appointment

import (
	"context"

	"github.com/groomshop/grooming-scheduler/internal/audit"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

type SetStatusInput struct {
	ID     uint
	UserID uint
	Status string
}

type SetStatus struct {
	repo   domain.Repository
	policy *domain.Policy
	clock  clock.Clock
	audit  audit.Sink
}

func NewSetStatus(
	repo domain.Repository,
	policy *domain.Policy,
	clk clock.Clock,
	audit audit.Sink,
) *SetStatus {
	return &SetStatus{
		repo:   repo,
		policy: policy,
		clock:  clk,
		audit:  audit,
	}
}

// Execute moves the appointment to the target status. Price fields are
// untouched. Only the owner may cancel; anyone authenticated may mark
// an appointment Completed.
func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (Summary, error) {

	var previous, target domain.Status

	updated, err := uc.repo.Mutate(ctx, in.ID, func(ap *models.Appointment) error {
		parsed, err := domain.ParseStatus(in.Status)
		if err != nil {
			return err
		}
		target = parsed
		previous = domain.Status(ap.Status)

		if err := uc.policy.AuthorizeTransition(ap, in.UserID, target); err != nil {
			return err
		}

		if err := domain.CanTransition(domain.Status(ap.Status), target); err != nil {
			return err
		}

		ap.Status = string(target)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	ev := audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": string(target)},
	}

	// Archive only when the appointment actually enters Completed, so
	// re-asserting the status cannot append a second snapshot.
	if target == domain.StatusCompleted && previous != domain.StatusCompleted {
		ev.History = &models.AppointmentHistory{
			AppointmentID:  updated.ID,
			UserID:         updated.UserID,
			ServiceTypeID:  updated.ServiceTypeID,
			ScheduledAt:    updated.ScheduledAt,
			CompletedAt:    uc.clock.Now(),
			BasePrice:      updated.BasePrice,
			DiscountAmount: updated.DiscountAmount,
			FinalPrice:     updated.FinalPrice,
		}
	}

	uc.audit.Dispatch(ev)

	return summarize(updated), nil
}
