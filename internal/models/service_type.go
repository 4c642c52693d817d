package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference data: seeded at migration time, never mutated by the API.
type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string          `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
