package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

// ===============================
// Price Snapshot
// ===============================

// PriceSnapshot is the price triple frozen onto an appointment when it
// is created or rebooked. It is never recomputed on reads.
type PriceSnapshot struct {
	BasePrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
}

// NewPriceSnapshot builds the triple from the catalog price and the
// oracle discount, holding base >= final >= 0.
func NewPriceSnapshot(base, discount decimal.Decimal) (PriceSnapshot, error) {
	if discount.IsNegative() || discount.GreaterThan(base) {
		return PriceSnapshot{}, apperr.DependencyFailure(
			"invalid_discount",
			"Pricing returned a discount outside the valid range.",
			nil,
		)
	}

	return PriceSnapshot{
		BasePrice:      base,
		DiscountAmount: discount,
		FinalPrice:     base.Sub(discount),
	}, nil
}

func (s PriceSnapshot) Apply(ap *models.Appointment) {
	ap.BasePrice = s.BasePrice
	ap.DiscountAmount = s.DiscountAmount
	ap.FinalPrice = s.FinalPrice
}
