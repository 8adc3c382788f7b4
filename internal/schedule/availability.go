package schedule

import "time"

// DayAvailable reports whether a day can take bookings at all: it must not be
// in the past (day granularity), it must have an exception entry and that
// entry must not be blocked. Per-slot availability is evaluated separately by
// AvailableSlots.
func DayAvailable(day time.Time, cfg Configuration, now time.Time) bool {
	if truncateToDay(day).Before(truncateToDay(now)) {
		return false
	}

	exc, ok := cfg.Exception(DayKey(day))
	return ok && !exc.Blocked
}

// AvailableSlots computes the bookable slot list for a day: the full slot set
// minus admin-disabled slots minus already-reserved ones, in enumeration
// order. Pure in its inputs.
func AvailableSlots(day time.Time, cfg Configuration, reserved []Slot, now time.Time) []Slot {
	if !DayAvailable(day, cfg, now) {
		return nil
	}

	exc, _ := cfg.Exception(DayKey(day))

	taken := make(map[Slot]bool, len(reserved))
	for _, s := range reserved {
		taken[s] = true
	}

	out := make([]Slot, 0, len(slotOrder))
	for _, s := range slotOrder {
		if exc.SlotEnabled(s) && !taken[s] {
			out = append(out, s)
		}
	}
	return out
}
