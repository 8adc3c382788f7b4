package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestDayAvailable(t *testing.T) {
	now := day(2025, time.June, 5)

	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{}
	cfg.Exceptions["2025-06-11"] = Exception{Blocked: true}
	cfg.Exceptions["2025-06-01"] = Exception{}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"enabled entry", day(2025, time.June, 10), true},
		{"blocked entry", day(2025, time.June, 11), false},
		{"no entry", day(2025, time.June, 12), false},
		{"past day with entry", day(2025, time.June, 1), false},
		{"today counts", day(2025, time.June, 5), false}, // no entry for today
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayAvailable(tt.day, cfg, now); got != tt.want {
				t.Errorf("DayAvailable(%s) = %v, want %v", DayKey(tt.day), got, tt.want)
			}
		})
	}

	// Blocked wins over slot overrides.
	cfg.Exceptions["2025-06-13"] = Exception{
		Blocked:       true,
		SlotOverrides: map[Slot]bool{Slot0830: false},
	}
	if DayAvailable(day(2025, time.June, 13), cfg, now) {
		t.Error("blocked day reported available despite enabled overrides")
	}

	// A same-day entry is available regardless of time of day.
	cfg.Exceptions["2025-06-05"] = Exception{}
	lateNow := time.Date(2025, time.June, 5, 23, 50, 0, 0, time.UTC)
	if !DayAvailable(day(2025, time.June, 5), cfg, lateNow) {
		t.Error("same-day entry reported unavailable late in the day")
	}
}

func TestAvailableSlotsAllOpen(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{}

	got := AvailableSlots(day(2025, time.June, 10), cfg, nil, now)
	if !reflect.DeepEqual(got, Slots()) {
		t.Errorf("got %v, want all six slots in order", got)
	}
}

func TestAvailableSlotsOverrideDisables(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot0830: true},
	}

	got := AvailableSlots(day(2025, time.June, 10), cfg, nil, now)

	want := []Slot{Slot1000, Slot1130, Slot1430, Slot1600, Slot1730}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlotsFalseOverrideStaysEnabled(t *testing.T) {
	// The stored override flag is inverted: an explicit false means the
	// slot is open, same as a missing key.
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot0830: false},
	}

	got := AvailableSlots(day(2025, time.June, 10), cfg, nil, now)
	if !reflect.DeepEqual(got, Slots()) {
		t.Errorf("got %v, want all six slots", got)
	}
}

func TestAvailableSlotsExcludesReserved(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot0830: true},
	}

	got := AvailableSlots(day(2025, time.June, 10), cfg, []Slot{Slot1000}, now)

	want := []Slot{Slot1130, Slot1430, Slot1600, Slot1730}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlotsUnconfiguredDayEmpty(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{}

	if got := AvailableSlots(day(2025, time.June, 11), cfg, nil, now); len(got) != 0 {
		t.Errorf("got %v for unconfigured day, want empty", got)
	}
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot1430: true},
	}
	reserved := []Slot{Slot0830}

	first := AvailableSlots(day(2025, time.June, 10), cfg, reserved, now)
	second := AvailableSlots(day(2025, time.June, 10), cfg, reserved, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call changed output: %v then %v", first, second)
	}
	if len(cfg.Exceptions["2025-06-10"].SlotOverrides) != 1 {
		t.Error("input configuration mutated")
	}
}

func TestParseSlot(t *testing.T) {
	for _, s := range Slots() {
		got, err := ParseSlot(string(s))
		if err != nil || got != s {
			t.Errorf("ParseSlot(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseSlot("9:00–10:30"); err != ErrUnknownSlot {
		t.Errorf("ParseSlot of unknown label: err = %v, want ErrUnknownSlot", err)
	}
}
