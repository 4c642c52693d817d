package appointment

import (
	"context"

	"github.com/groomshop/grooming-scheduler/internal/audit"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
)

type DeleteInput struct {
	ID     uint
	UserID uint
}

type Delete struct {
	repo   domain.Repository
	policy *domain.Policy
	clock  clock.Clock
	audit  audit.Sink
}

func NewDelete(
	repo domain.Repository,
	policy *domain.Policy,
	clk clock.Clock,
	audit audit.Sink,
) *Delete {
	return &Delete{
		repo:   repo,
		policy: policy,
		clock:  clk,
		audit:  audit,
	}
}

// Execute hard-deletes the appointment. No history row is written.
func (uc *Delete) Execute(ctx context.Context, in DeleteInput) error {
	ap, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}

	if err := uc.policy.AuthorizeDelete(ap, in.UserID, uc.clock.Now()); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
