package appointment

import (
	"context"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
)

type PermissionFlags struct {
	CanModify bool `json:"can_modify"`
	CanDelete bool `json:"can_delete"`
}

// Permissions pre-flights the policy checks so callers get a clean
// yes/no instead of attempting the mutation and handling the failure.
type Permissions struct {
	repo   domain.Repository
	policy *domain.Policy
	clock  clock.Clock
}

func NewPermissions(
	repo domain.Repository,
	policy *domain.Policy,
	clk clock.Clock,
) *Permissions {
	return &Permissions{
		repo:   repo,
		policy: policy,
		clock:  clk,
	}
}

// Execute never fails on a missing appointment: a row that does not
// exist simply grants nothing.
func (uc *Permissions) Execute(
	ctx context.Context,
	id uint,
	userID uint,
) (PermissionFlags, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return PermissionFlags{}, nil
		}
		return PermissionFlags{}, err
	}

	return PermissionFlags{
		CanModify: uc.policy.CanModify(ap, userID),
		CanDelete: uc.policy.CanDelete(ap, userID, uc.clock.Now()),
	}, nil
}
