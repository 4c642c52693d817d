package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceTypeID uint        `gorm:"not null" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type"`

	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	// Price snapshot, frozen at create/update time. Never derived from
	// the catalog at read time.
	BasePrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_amount"`
	FinalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"final_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
