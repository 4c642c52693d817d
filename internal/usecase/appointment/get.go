package appointment

import (
	"context"

	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uint) (Summary, error) {
	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	return summarize(ap), nil
}

// GetDetail adds the owner's account age on top of the summary.
type GetDetail struct {
	repo domain.Repository
}

func NewGetDetail(repo domain.Repository) *GetDetail {
	return &GetDetail{repo: repo}
}

func (uc *GetDetail) Execute(ctx context.Context, id uint) (Detail, error) {
	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return detail(ap), nil
}
