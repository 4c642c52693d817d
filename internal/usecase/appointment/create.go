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

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID        uint
	ServiceTypeID uint
	ScheduledAt   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo    domain.Repository
	catalog catalog.Catalog
	oracle  pricing.Oracle
	clock   clock.Clock
	audit   audit.Sink
}

func NewCreate(
	repo domain.Repository,
	cat catalog.Catalog,
	oracle pricing.Oracle,
	clk clock.Clock,
	audit audit.Sink,
) *Create {
	return &Create{
		repo:    repo,
		catalog: cat,
		oracle:  oracle,
		clock:   clk,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (Summary, error) {

	now := uc.clock.Now()

	if clock.BeforeDate(in.ScheduledAt, now) {
		return Summary{}, apperr.InvalidArgument("past_date", "Scheduled date cannot be in the past.")
	}

	st, err := uc.catalog.GetServiceType(ctx, in.ServiceTypeID)
	if err != nil {
		return Summary{}, err
	}

	// The discount is computed before the appointment is persisted so
	// the oracle never counts the appointment being created.
	createdAt := now
	discount, err := uc.oracle.ComputeDiscount(ctx, in.UserID, st.ID, createdAt)
	if err != nil {
		return Summary{}, apperr.DependencyFailure(
			"pricing_unavailable",
			"Could not compute the appointment price.",
			err,
		)
	}

	snap, err := domain.NewPriceSnapshot(st.Price, discount)
	if err != nil {
		return Summary{}, err
	}

	ap := &models.Appointment{
		UserID:        in.UserID,
		ServiceTypeID: st.ID,
		ScheduledAt:   in.ScheduledAt,
		Status:        string(domain.InitialStatus()),
		CreatedAt:     createdAt,
	}
	snap.Apply(ap)

	if err := uc.repo.Create(ctx, ap); err != nil {
		return Summary{}, err
	}

	created, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return Summary{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return summarize(created), nil
}
