package notify

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

type fakeQueue struct {
	reminders map[uuid.UUID]*Reminder
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{reminders: make(map[uuid.UUID]*Reminder)}
}

func (q *fakeQueue) add(id uuid.UUID, dueAt time.Time) {
	q.reminders[id] = &Reminder{ReservationID: id, DueAt: dueAt, Status: ReminderPending}
}

func (q *fakeQueue) DuePending(ctx context.Context, now time.Time, limit int) ([]Reminder, error) {
	var out []Reminder
	for _, r := range q.reminders {
		if r.Status == ReminderPending && !r.DueAt.After(now) {
			out = append(out, *r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (q *fakeQueue) ClaimSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r, ok := q.reminders[id]
	if !ok || r.Status != ReminderPending {
		return false, nil
	}
	r.Status = ReminderSent
	r.SentAt = &at
	return true, nil
}

func (q *fakeQueue) Cancel(ctx context.Context, id uuid.UUID) error {
	if r, ok := q.reminders[id]; ok && r.Status == ReminderPending {
		r.Status = ReminderCancelled
	}
	return nil
}

type fakeReservations struct {
	byID map[uuid.UUID]booking.Reservation
}

func (f *fakeReservations) GetByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, booking.ErrReservationNotFound
	}
	return &r, nil
}

type fakeReminderMailer struct {
	sent []uuid.UUID
}

func (f *fakeReminderMailer) SendReminder(ctx context.Context, r booking.Reservation) error {
	f.sent = append(f.sent, r.ID)
	return nil
}

func TestDispatchDueSendsAndClaims(t *testing.T) {
	now := time.Date(2025, time.June, 9, 0, 30, 0, 0, time.UTC)

	r := booking.Reservation{
		ID:       uuid.New(),
		Day:      time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Slot:     schedule.Slot1000,
		FullName: "María García",
		Email:    "maria@example.com",
	}

	queue := newFakeQueue()
	queue.add(r.ID, r.Day.Add(-24*time.Hour))

	mailer := &fakeReminderMailer{}
	d := NewDispatcher(queue, &fakeReservations{byID: map[uuid.UUID]booking.Reservation{r.ID: r}}, mailer)
	d.clock = func() time.Time { return now }

	if err := d.DispatchDue(context.Background()); err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}

	if len(mailer.sent) != 1 || mailer.sent[0] != r.ID {
		t.Fatalf("sent %v, want exactly [%s]", mailer.sent, r.ID)
	}
	if queue.reminders[r.ID].Status != ReminderSent {
		t.Errorf("reminder status = %s, want sent", queue.reminders[r.ID].Status)
	}

	// A second sweep finds nothing pending.
	if err := d.DispatchDue(context.Background()); err != nil {
		t.Fatalf("second DispatchDue: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Errorf("reminder sent twice")
	}
}

func TestDispatchDueSkipsNotYetDue(t *testing.T) {
	now := time.Date(2025, time.June, 7, 12, 0, 0, 0, time.UTC)

	r := booking.Reservation{
		ID:  uuid.New(),
		Day: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}

	queue := newFakeQueue()
	queue.add(r.ID, r.Day.Add(-24*time.Hour))

	mailer := &fakeReminderMailer{}
	d := NewDispatcher(queue, &fakeReservations{byID: map[uuid.UUID]booking.Reservation{r.ID: r}}, mailer)
	d.clock = func() time.Time { return now }

	if err := d.DispatchDue(context.Background()); err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("reminder sent before its due time")
	}
	if queue.reminders[r.ID].Status != ReminderPending {
		t.Errorf("reminder status = %s, want pending", queue.reminders[r.ID].Status)
	}
}

func TestDispatchDueCancelsOrphans(t *testing.T) {
	now := time.Date(2025, time.June, 9, 0, 30, 0, 0, time.UTC)

	orphanID := uuid.New()
	queue := newFakeQueue()
	queue.add(orphanID, now.Add(-time.Hour))

	mailer := &fakeReminderMailer{}
	d := NewDispatcher(queue, &fakeReservations{byID: map[uuid.UUID]booking.Reservation{}}, mailer)
	d.clock = func() time.Time { return now }

	if err := d.DispatchDue(context.Background()); err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("mail sent for a reservation that no longer exists")
	}
	if queue.reminders[orphanID].Status != ReminderCancelled {
		t.Errorf("orphan reminder status = %s, want cancelled", queue.reminders[orphanID].Status)
	}
}
