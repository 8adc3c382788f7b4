package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
)

const dispatchBatchSize = 50

// ReservationSource loads the reservation a reminder belongs to.
type ReservationSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
}

// ReminderMailer sends the reminder mail itself.
type ReminderMailer interface {
	SendReminder(ctx context.Context, r booking.Reservation) error
}

// ReminderQueue is the slice of the reminder store the dispatcher needs.
// PgReminderStore satisfies it.
type ReminderQueue interface {
	DuePending(ctx context.Context, now time.Time, limit int) ([]Reminder, error)
	ClaimSent(ctx context.Context, reservationID uuid.UUID, sentAt time.Time) (bool, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

// Dispatcher sends due reminders. Intended to be called periodically by the
// reminder worker.
type Dispatcher struct {
	store        ReminderQueue
	reservations ReservationSource
	mailer       ReminderMailer
	clock        func() time.Time
}

func NewDispatcher(store ReminderQueue, reservations ReservationSource, mailer ReminderMailer) *Dispatcher {
	return &Dispatcher{
		store:        store,
		reservations: reservations,
		mailer:       mailer,
		clock:        time.Now,
	}
}

// DispatchDue claims and sends every reminder whose fire time has passed. A
// reminder whose reservation is gone is cancelled instead of sent.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	now := d.clock()

	due, err := d.store.DuePending(ctx, now, dispatchBatchSize)
	if err != nil {
		return fmt.Errorf("find due reminders: %w", err)
	}

	for _, rem := range due {
		r, err := d.reservations.GetByID(ctx, rem.ReservationID)
		if err != nil {
			if errors.Is(err, booking.ErrReservationNotFound) {
				if err := d.store.Cancel(ctx, rem.ReservationID); err != nil {
					log.Printf("failed to cancel orphan reminder %s: %v", rem.ReservationID, err)
				}
				continue
			}
			log.Printf("failed to load reservation %s for reminder: %v", rem.ReservationID, err)
			continue
		}

		claimed, err := d.store.ClaimSent(ctx, rem.ReservationID, now)
		if err != nil {
			log.Printf("failed to claim reminder %s: %v", rem.ReservationID, err)
			continue
		}
		if !claimed {
			// Another dispatcher got there first.
			continue
		}

		if err := d.mailer.SendReminder(ctx, *r); err != nil {
			log.Printf("failed to send reminder for reservation %s: %v", rem.ReservationID, err)
			continue
		}
		log.Printf("sent reminder for reservation %s to %s", rem.ReservationID, r.Email)
	}

	return nil
}
