package appointment

import (
	"context"
	"time"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/audit"
	"github.com/groomshop/grooming-scheduler/internal/catalog"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/models"
	"github.com/groomshop/grooming-scheduler/internal/pricing"
)

type UpdateInput struct {
	ID            uint
	UserID        uint
	ServiceTypeID uint
	ScheduledAt   time.Time
}

type Update struct {
	repo    domain.Repository
	catalog catalog.Catalog
	oracle  pricing.Oracle
	policy  *domain.Policy
	clock   clock.Clock
	audit   audit.Sink
}

func NewUpdate(
	repo domain.Repository,
	cat catalog.Catalog,
	oracle pricing.Oracle,
	policy *domain.Policy,
	clk clock.Clock,
	audit audit.Sink,
) *Update {
	return &Update{
		repo:    repo,
		catalog: cat,
		oracle:  oracle,
		policy:  policy,
		clock:   clk,
		audit:   audit,
	}
}

// Execute rebooks an appointment onto a new service type and date and
// refreezes its price snapshot. The oracle is anchored on the original
// CreatedAt, so editing cannot move the booking between discount tiers.
func (uc *Update) Execute(
	ctx context.Context,
	in UpdateInput,
) (Summary, error) {

	updated, err := uc.repo.Mutate(ctx, in.ID, func(ap *models.Appointment) error {
		if err := uc.policy.AuthorizeModify(ap, in.UserID); err != nil {
			return err
		}

		if err := domain.CanEdit(domain.Status(ap.Status)); err != nil {
			return err
		}

		if clock.BeforeDate(in.ScheduledAt, uc.clock.Now()) {
			return apperr.InvalidArgument("past_date", "Scheduled date cannot be in the past.")
		}

		st, err := uc.catalog.GetServiceType(ctx, in.ServiceTypeID)
		if err != nil {
			return err
		}

		discount, err := uc.oracle.ComputeDiscount(ctx, in.UserID, st.ID, ap.CreatedAt)
		if err != nil {
			return apperr.DependencyFailure(
				"pricing_unavailable",
				"Could not compute the appointment price.",
				err,
			)
		}

		snap, err := domain.NewPriceSnapshot(st.Price, discount)
		if err != nil {
			return err
		}

		ap.ServiceTypeID = st.ID
		ap.ScheduledAt = in.ScheduledAt
		snap.Apply(ap)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return summarize(updated), nil
}
