package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Denormalized snapshot of a completed appointment. Append-only,
// written off the request path when an appointment reaches Completed.
type AppointmentHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`
	UserID        uint `json:"user_id"`
	ServiceTypeID uint `json:"service_type_id"`

	ScheduledAt time.Time `json:"scheduled_at"`
	CompletedAt time.Time `json:"completed_at"`

	BasePrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"base_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	FinalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"final_price"`

	CreatedAt time.Time `json:"created_at"`
}
