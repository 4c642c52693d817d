package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create / Read
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ServiceType").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("User").
		Preload("ServiceType")

	if filter.Date != nil {
		day := clock.DateOf(*filter.Date)
		q = q.Where(
			"scheduled_at >= ? AND scheduled_at < ?",
			day, day.Add(24*time.Hour),
		)
	}

	if filter.NameSubstring != "" {
		pattern := "%" + filter.NameSubstring + "%"
		q = q.
			Joins("JOIN users ON users.id = appointments.user_id").
			Where(
				"users.display_name ILIKE ? OR users.username ILIKE ?",
				pattern, pattern,
			)
	}

	var aps []models.Appointment
	if err := q.Order("scheduled_at ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

// Mutate locks the row for the duration of fn so concurrent writers
// serialize instead of overwriting each other's snapshot. The row is
// reloaded with its relations after commit.
func (r *AppointmentGormRepository) Mutate(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	var mutatedID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, id).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("appointment_not_found", "Appointment not found.")
			}
			return err
		}

		if err := fn(&ap); err != nil {
			return err
		}

		if err := tx.Save(&ap).Error; err != nil {
			return err
		}

		mutatedID = ap.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, mutatedID)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
