package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

// Reservation is one confirmed booking. At most one may exist per
// (day, slot) pair; the reservations table enforces that with a unique
// constraint.
type Reservation struct {
	ID         uuid.UUID
	Day        time.Time // date only, midnight in the studio's timezone
	Slot       schedule.Slot
	FullName   string
	NationalID string
	BirthDate  string // dd/mm/yyyy as entered on the form
	Email      string
	Phone      string
	CreatedAt  time.Time
}

func (r Reservation) DayKey() string {
	return schedule.DayKey(r.Day)
}
