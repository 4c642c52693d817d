package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Oracle computes the discount a user gets for a service type. The
// discount rule itself lives behind this interface; the engine only
// consumes the amount. reference anchors the computation in time so
// that editing an appointment cannot move it between discount tiers.
type Oracle interface {
	ComputeDiscount(
		ctx context.Context,
		userID uint,
		serviceTypeID uint,
		reference time.Time,
	) (decimal.Decimal, error)
}
