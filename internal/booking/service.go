package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/fransaa81/glowup-dermoestetica/internal/redis"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

var (
	ErrDayUnavailable    = errors.New("selected day has no availability")
	ErrSlotNotOpen       = errors.New("slot is not open on this day")
	ErrSlotAlreadyBooked = errors.New("slot already has a reservation")
	ErrSlotBeingBooked   = errors.New("slot is currently being booked, please retry")
)

// ScheduleSource provides the current exception map. schedule.Store
// satisfies it.
type ScheduleSource interface {
	Get(ctx context.Context) (schedule.Configuration, error)
}

// Notifier sends the booking confirmation mail. Failures are logged, never
// surfaced: the reservation is the durable, authoritative outcome.
type Notifier interface {
	SendConfirmation(ctx context.Context, r Reservation) error
}

// ReminderScheduler enqueues and cancels the durable reminder that fires
// before the appointment.
type ReminderScheduler interface {
	Schedule(ctx context.Context, r Reservation, dueAt time.Time) error
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

// AvailabilityCache serves short-lived slot snapshots for read paths. Booking
// never trusts it; commits re-validate against the stores under the lock.
type AvailabilityCache interface {
	Get(ctx context.Context, day string) ([]string, bool)
	Set(ctx context.Context, day string, slots []string) error
	Invalidate(ctx context.Context, day string) error
}

type Service struct {
	repo      Repository
	schedules ScheduleSource
	locker    redisclient.Locker
	notifier  Notifier
	reminders ReminderScheduler
	cache     AvailabilityCache // may be nil
	lead      time.Duration
	clock     func() time.Time
}

func NewService(
	repo Repository,
	schedules ScheduleSource,
	locker redisclient.Locker,
	notifier Notifier,
	reminders ReminderScheduler,
	cache AvailabilityCache,
	reminderLead time.Duration,
) *Service {
	return &Service{
		repo:      repo,
		schedules: schedules,
		locker:    locker,
		notifier:  notifier,
		reminders: reminders,
		cache:     cache,
		lead:      reminderLead,
		clock:     time.Now,
	}
}

// Book reserves a slot for a client. Availability is re-validated at commit
// time inside a per-(day, slot) lock; the unique constraint on the
// reservations table backs the lock up, so two concurrent commits for the
// same slot yield exactly one success.
func (s *Service) Book(ctx context.Context, day time.Time, slot schedule.Slot, info ClientInfo) (*Reservation, error) {
	now := s.clock()

	if err := info.Validate(now); err != nil {
		return nil, err
	}

	dayKey := schedule.DayKey(day)
	var created *Reservation

	err := s.locker.WithSlotLock(ctx, dayKey, string(slot), func(lockCtx context.Context) error {
		cfg, err := s.schedules.Get(lockCtx)
		if err != nil {
			return fmt.Errorf("load schedule configuration: %w", err)
		}

		if !schedule.DayAvailable(day, cfg, now) {
			return ErrDayUnavailable
		}

		exc, _ := cfg.Exception(dayKey)
		if !exc.SlotEnabled(slot) {
			return ErrSlotNotOpen
		}

		taken, err := s.repo.SlotsTaken(lockCtx, dayKey)
		if err != nil {
			return fmt.Errorf("load taken slots: %w", err)
		}
		for _, t := range taken {
			if t == slot {
				return ErrSlotAlreadyBooked
			}
		}

		r := Reservation{
			ID:         uuid.New(),
			Day:        day,
			Slot:       slot,
			FullName:   info.FullName,
			NationalID: info.NationalID,
			BirthDate:  info.BirthDate,
			Email:      info.Email,
			Phone:      info.Phone,
			CreatedAt:  now,
		}

		created, err = s.repo.Insert(lockCtx, r)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, redisclient.ErrLockNotAcquired) {
			return nil, ErrSlotBeingBooked
		}
		return nil, err
	}

	s.invalidate(ctx, dayKey)
	s.notifyBooked(*created, now)

	return created, nil
}

// Cancel removes a reservation and withdraws its pending reminder.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, r.DayKey())

	if err := s.reminders.Cancel(ctx, id); err != nil {
		log.Printf("failed to cancel reminder for reservation %s: %v", id, err)
	}
	return nil
}

// AvailableSlots returns the bookable slot list for a day, serving from the
// snapshot cache when possible.
func (s *Service) AvailableSlots(ctx context.Context, day time.Time) ([]schedule.Slot, error) {
	dayKey := schedule.DayKey(day)

	if s.cache != nil {
		if labels, ok := s.cache.Get(ctx, dayKey); ok {
			return parseSlots(labels), nil
		}
	}

	cfg, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule configuration: %w", err)
	}

	taken, err := s.repo.SlotsTaken(ctx, dayKey)
	if err != nil {
		return nil, fmt.Errorf("load taken slots: %w", err)
	}

	slots := schedule.AvailableSlots(day, cfg, taken, s.clock())

	if s.cache != nil {
		if err := s.cache.Set(ctx, dayKey, slotLabels(slots)); err != nil {
			log.Printf("failed to cache availability for %s: %v", dayKey, err)
		}
	}
	return slots, nil
}

// MonthCells derives the 42-cell calendar for the month containing ref.
func (s *Service) MonthCells(ctx context.Context, ref time.Time) ([]schedule.Cell, error) {
	cfg, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule configuration: %w", err)
	}

	grid := schedule.MonthGrid(ref)
	from := schedule.DayKey(grid[0])
	to := schedule.DayKey(grid[len(grid)-1])

	reservedByDay, err := s.repo.SlotsTakenRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load taken slots for month: %w", err)
	}

	return schedule.BuildMonth(ref, cfg, reservedByDay, s.clock()), nil
}

func (s *Service) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListReservations(ctx context.Context, limit, offset int) ([]Reservation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListReservationsByDay(ctx context.Context, day string) ([]Reservation, error) {
	return s.repo.ListByDay(ctx, day)
}

// notifyBooked fires the confirmation mail and enqueues the reminder. Both
// are best-effort: a notification failure never rolls back the reservation.
func (s *Service) notifyBooked(r Reservation, now time.Time) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifier.SendConfirmation(ctx, r); err != nil {
			log.Printf("failed to send confirmation for reservation %s: %v", r.ID, err)
		}

		dueAt := r.Day.Add(-s.lead)
		if !dueAt.After(now) {
			// Reminder time already passed; nothing to schedule.
			return
		}
		if err := s.reminders.Schedule(ctx, r, dueAt); err != nil {
			log.Printf("failed to schedule reminder for reservation %s: %v", r.ID, err)
		}
	}()
}

func (s *Service) invalidate(ctx context.Context, day string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, day); err != nil {
		log.Printf("failed to invalidate availability for %s: %v", day, err)
	}
}

func parseSlots(labels []string) []schedule.Slot {
	out := make([]schedule.Slot, 0, len(labels))
	for _, l := range labels {
		if slot, err := schedule.ParseSlot(l); err == nil {
			out = append(out, slot)
		}
	}
	return out
}

func slotLabels(slots []schedule.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, string(s))
	}
	return out
}
