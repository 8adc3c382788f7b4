package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

var ErrReservationNotFound = errors.New("reservation not found")

// Repository contains all DB interactions needed by the service.
type Repository interface {
	// Insert is a conditional append: it fails with ErrSlotAlreadyBooked
	// when a reservation for the same (day, slot) pair already exists.
	Insert(ctx context.Context, r Reservation) (*Reservation, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	List(ctx context.Context, limit, offset int) ([]Reservation, error)
	ListByDay(ctx context.Context, day string) ([]Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// For availability computation
	SlotsTaken(ctx context.Context, day string) ([]schedule.Slot, error)
	SlotsTakenRange(ctx context.Context, from, to string) (map[string][]schedule.Slot, error)
}
