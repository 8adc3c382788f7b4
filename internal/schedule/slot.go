package schedule

import (
	"errors"
	"time"
)

// Slot is one of the six fixed working-day time ranges. The labels are an
// external contract: they appear verbatim in stored reservations, admin
// overrides and outgoing mail.
type Slot string

const (
	Slot0830 Slot = "8:30–10:00"
	Slot1000 Slot = "10:00–11:30"
	Slot1130 Slot = "11:30–13:00"
	Slot1430 Slot = "14:30–16:00"
	Slot1600 Slot = "16:00–17:30"
	Slot1730 Slot = "17:30–19:00"
)

// slotOrder fixes the enumeration order used everywhere a slot list is
// produced.
var slotOrder = [...]Slot{
	Slot0830,
	Slot1000,
	Slot1130,
	Slot1430,
	Slot1600,
	Slot1730,
}

var ErrUnknownSlot = errors.New("unknown time slot")

// Slots returns the full slot set in enumeration order.
func Slots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder[:])
	return out
}

func ParseSlot(s string) (Slot, error) {
	for _, known := range slotOrder {
		if Slot(s) == known {
			return known, nil
		}
	}
	return "", ErrUnknownSlot
}

// DayKey formats a date the way the exception map and the reservations table
// key it: yyyy-MM-dd, time of day ignored.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
