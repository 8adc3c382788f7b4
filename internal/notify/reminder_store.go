package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
)

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Reminder is one durable scheduled mail, keyed by its reservation.
type Reminder struct {
	ReservationID uuid.UUID
	DueAt         time.Time
	Status        ReminderStatus
	CreatedAt     time.Time
	SentAt        *time.Time
}

// PgReminderStore persists reminders so they survive restarts and can be
// withdrawn when a reservation is cancelled.
type PgReminderStore struct {
	pool *pgxpool.Pool
}

func NewPgReminderStore(pool *pgxpool.Pool) *PgReminderStore {
	return &PgReminderStore{pool: pool}
}

func (s *PgReminderStore) Schedule(ctx context.Context, r booking.Reservation, dueAt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reminders (reservation_id, due_at, status, created_at)
		VALUES ($1, $2, 'pending', now())
		ON CONFLICT (reservation_id) DO UPDATE
		SET due_at = EXCLUDED.due_at,
		    status = 'pending'
	`, r.ID, dueAt)
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	return nil
}

func (s *PgReminderStore) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE reminders
		SET status = 'cancelled'
		WHERE reservation_id = $1
		  AND status = 'pending'
	`, reservationID)
	if err != nil {
		return fmt.Errorf("cancel reminder: %w", err)
	}
	return nil
}

// DuePending lists pending reminders whose fire time has passed.
func (s *PgReminderStore) DuePending(ctx context.Context, now time.Time, limit int) ([]Reminder, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT reservation_id, due_at, status, created_at, sent_at
		FROM reminders
		WHERE status = 'pending'
		  AND due_at <= $1
		ORDER BY due_at
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("find due reminders: %w", err)
	}
	defer rows.Close()

	var result []Reminder
	for rows.Next() {
		var r Reminder
		if err := rows.Scan(&r.ReservationID, &r.DueAt, &r.Status, &r.CreatedAt, &r.SentAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find due reminders: %w", err)
	}
	return result, nil
}

// ClaimSent flips a pending reminder to sent. The conditional update makes
// the claim exclusive, so concurrent dispatchers cannot double-send.
func (s *PgReminderStore) ClaimSent(ctx context.Context, reservationID uuid.UUID, at time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE reminders
		SET status = 'sent',
		    sent_at = $2
		WHERE reservation_id = $1
		  AND status = 'pending'
	`, reservationID, at)
	if err != nil {
		return false, fmt.Errorf("mark reminder sent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
