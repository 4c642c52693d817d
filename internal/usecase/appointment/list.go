package appointment

import (
	"context"

	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute lists appointments across all owners, scheduled_at ascending.
// Owner scoping is deliberately absent here: the listing surface shows
// the whole book, ownership only gates mutations.
func (uc *List) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]Summary, error) {

	aps, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(aps))
	for i := range aps {
		out = append(out, summarize(&aps[i]))
	}

	return out, nil
}
