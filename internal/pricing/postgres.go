package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PostgresOracle delegates to the calculate_appointment_discount
// function installed at migration time. The loyalty rule stays in SQL
// where it can count completed appointments consistently with the
// transaction that calls it.
type PostgresOracle struct {
	db *gorm.DB
}

func NewPostgresOracle(db *gorm.DB) *PostgresOracle {
	return &PostgresOracle{db: db}
}

func (o *PostgresOracle) ComputeDiscount(
	ctx context.Context,
	userID uint,
	serviceTypeID uint,
	reference time.Time,
) (decimal.Decimal, error) {

	row := o.db.WithContext(ctx).Raw(
		"SELECT calculate_appointment_discount(?, ?, ?)",
		userID,
		serviceTypeID,
		reference,
	).Row()

	var discount decimal.Decimal
	if err := row.Scan(&discount); err != nil {
		return decimal.Zero, err
	}

	return discount, nil
}

var _ Oracle = (*PostgresOracle)(nil)
