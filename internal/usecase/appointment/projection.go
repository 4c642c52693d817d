package appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/groomshop/grooming-scheduler/internal/models"
)

// Shown when an appointment's service type can no longer be resolved.
const missingServiceTypeName = "unavailable"

// ======================================================
// READ SHAPES
// ======================================================

type Summary struct {
	ID uint `json:"id"`

	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`

	ServiceTypeID   uint   `json:"service_type_id"`
	ServiceTypeName string `json:"service_type_name"`
	DurationMinutes int    `json:"duration_minutes"`

	BasePrice      decimal.Decimal `json:"base_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`

	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Detail struct {
	Summary
	UserCreatedAt time.Time `json:"user_created_at"`
}

// summarize projects a stored appointment. Prices come straight from
// the snapshot columns, never from the catalog.
func summarize(ap *models.Appointment) Summary {
	s := Summary{
		ID:              ap.ID,
		UserID:          ap.UserID,
		Username:        ap.User.Username,
		DisplayName:     ap.User.DisplayName,
		ServiceTypeID:   ap.ServiceTypeID,
		ServiceTypeName: missingServiceTypeName,
		BasePrice:       ap.BasePrice,
		DiscountAmount:  ap.DiscountAmount,
		FinalPrice:      ap.FinalPrice,
		ScheduledAt:     ap.ScheduledAt,
		Status:          ap.Status,
		CreatedAt:       ap.CreatedAt,
	}

	if ap.ServiceType.ID != 0 {
		s.ServiceTypeName = ap.ServiceType.Name
		s.DurationMinutes = ap.ServiceType.DurationMinutes
	}

	return s
}

func detail(ap *models.Appointment) Detail {
	return Detail{
		Summary:       summarize(ap),
		UserCreatedAt: ap.User.CreatedAt,
	}
}
