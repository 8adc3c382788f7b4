package schedule

// Exception is the admin-maintained availability entry for one day. Days
// with no entry at all take no bookings; the system is opt-in per day.
type Exception struct {
	Blocked bool `json:"blocked"`

	// SlotOverrides carries inverted per-slot flags inherited from the
	// stored format: true means the slot is disabled, a missing key or
	// false means it is open. Read it through SlotEnabled only.
	SlotOverrides map[Slot]bool `json:"slotOverrides,omitempty"`
}

// SlotEnabled reports whether a slot is open on this day's entry. It exists
// so call sites never touch the inverted override flag directly.
func (e Exception) SlotEnabled(s Slot) bool {
	return !e.SlotOverrides[s]
}

// Configuration is the full day-keyed exception map, loaded from the
// schedule store and passed into the pure availability functions.
type Configuration struct {
	Exceptions map[string]Exception
}

func NewConfiguration() Configuration {
	return Configuration{Exceptions: make(map[string]Exception)}
}

// Exception looks up the entry for a yyyy-MM-dd key.
func (c Configuration) Exception(day string) (Exception, bool) {
	exc, ok := c.Exceptions[day]
	return exc, ok
}
