package schedule

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridShape(t *testing.T) {
	months := []time.Time{
		day(2025, time.June, 10),
		day(2025, time.January, 1),
		day(2025, time.February, 28),
		day(2026, time.February, 1),  // starts on a Sunday
		day(2027, time.February, 15), // 28 days starting on a Monday, exactly 4 weeks
		day(2024, time.December, 31),
	}

	for _, ref := range months {
		grid := MonthGrid(ref)

		if len(grid) != 42 {
			t.Fatalf("MonthGrid(%s): got %d cells, want 42", ref.Format("2006-01"), len(grid))
		}

		if grid[0].Weekday() != time.Monday {
			t.Errorf("MonthGrid(%s): first cell is %s, want Monday", ref.Format("2006-01"), grid[0].Weekday())
		}

		for i := 1; i < len(grid); i++ {
			if got := grid[i].Sub(grid[i-1]); got != 24*time.Hour {
				t.Errorf("MonthGrid(%s): gap of %s between cells %d and %d", ref.Format("2006-01"), got, i-1, i)
			}
		}

		first := day(ref.Year(), ref.Month(), 1)
		last := first.AddDate(0, 1, -1)
		if grid[0].After(first) {
			t.Errorf("MonthGrid(%s): grid starts %s, after first of month", ref.Format("2006-01"), grid[0])
		}
		if grid[41].Before(last) {
			t.Errorf("MonthGrid(%s): grid ends %s, before last of month %s", ref.Format("2006-01"), grid[41], last)
		}
	}
}

func TestMonthGridMondayRemap(t *testing.T) {
	// June 2025 starts on a Sunday; Monday-first grids must pull it to
	// position 6, so the grid starts on May 26.
	grid := MonthGrid(day(2025, time.June, 10))

	if want := day(2025, time.May, 26); !grid[0].Equal(want) {
		t.Errorf("grid starts at %s, want %s", grid[0], want)
	}
	if !grid[6].Equal(day(2025, time.June, 1)) {
		t.Errorf("June 1 at position %s, want index 6", grid[6])
	}
}

func TestBuildMonthCells(t *testing.T) {
	now := day(2025, time.June, 5)
	cfg := NewConfiguration()
	cfg.Exceptions["2025-06-10"] = Exception{}
	cfg.Exceptions["2025-06-11"] = Exception{Blocked: true}

	reserved := map[string][]Slot{
		"2025-06-10": {Slot1000},
	}

	cells := BuildMonth(day(2025, time.June, 1), cfg, reserved, now)
	if len(cells) != 42 {
		t.Fatalf("got %d cells, want 42", len(cells))
	}

	byDay := make(map[string]Cell, len(cells))
	inMonth := 0
	for _, c := range cells {
		byDay[DayKey(c.Day)] = c
		if c.InMonth {
			inMonth++
		}
	}

	if inMonth != 30 {
		t.Errorf("got %d in-month cells for June, want 30", inMonth)
	}
	if c := byDay["2025-06-05"]; !c.Today {
		t.Error("2025-06-05 not marked today")
	}
	if c := byDay["2025-06-10"]; c.OpenSlots != 5 {
		t.Errorf("2025-06-10 open slots = %d, want 5 (one reserved)", c.OpenSlots)
	}
	if c := byDay["2025-06-11"]; c.OpenSlots != 0 {
		t.Errorf("blocked 2025-06-11 open slots = %d, want 0", c.OpenSlots)
	}
	if c := byDay["2025-06-12"]; c.OpenSlots != 0 {
		t.Errorf("unconfigured 2025-06-12 open slots = %d, want 0", c.OpenSlots)
	}
	if c := byDay["2025-05-26"]; c.InMonth {
		t.Error("May padding cell marked in-month")
	}
}
