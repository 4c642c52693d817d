package audit

import (
	"log"

	"github.com/groomshop/grooming-scheduler/internal/models"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any

	// History, when set, is archived alongside the audit row. Used by
	// the Completed transition to snapshot the appointment.
	History *models.AppointmentHistory
}

// Sink receives audit events. Satisfied by Dispatcher; substituted
// with a capture in tests.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}

		if ev.History != nil {
			if err := d.logger.Archive(ev.History); err != nil {
				log.Println("history archive error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue: drop rather than block the API
		log.Println("audit queue full, dropping event")
	}
}
