package appointment

import (
	"time"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

// ===============================
// Authorization Policy
// ===============================

// Policy owns every ownership rule so call sites never re-derive them.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// CanModify reports whether the principal owns the appointment.
func (p *Policy) CanModify(ap *models.Appointment, userID uint) bool {
	return ap != nil && ap.UserID == userID
}

// CanDelete reports whether the principal owns the appointment and it
// is not scheduled for today. Same-day deletion is blocked to prevent
// last-minute cancellations.
func (p *Policy) CanDelete(ap *models.Appointment, userID uint, now time.Time) bool {
	return p.CanModify(ap, userID) && !clock.SameDate(ap.ScheduledAt, now)
}

func (p *Policy) AuthorizeModify(ap *models.Appointment, userID uint) error {
	if !p.CanModify(ap, userID) {
		return apperr.Forbidden("not_owner", "You can only change your own appointments.")
	}
	return nil
}

func (p *Policy) AuthorizeDelete(ap *models.Appointment, userID uint, now time.Time) error {
	if err := p.AuthorizeModify(ap, userID); err != nil {
		return err
	}
	if clock.SameDate(ap.ScheduledAt, now) {
		return apperr.InvalidState("same_day_delete", "Appointments cannot be deleted on their scheduled day.")
	}
	return nil
}

// AuthorizeTransition applies the ownership rule for status changes:
// only the owner may cancel, any authenticated principal may set the
// other statuses (staff marking an appointment Completed).
func (p *Policy) AuthorizeTransition(ap *models.Appointment, userID uint, target Status) error {
	if target == StatusCancelled && !p.CanModify(ap, userID) {
		return apperr.Forbidden("not_owner", "You can only cancel your own appointments.")
	}
	return nil
}
