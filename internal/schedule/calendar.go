package schedule

import "time"

// gridSize is six full Monday-to-Sunday weeks. Months spanning four or five
// calendar weeks are still padded up to 42 cells.
const gridSize = 42

// Cell is one derived calendar cell for a displayed month.
type Cell struct {
	Day       time.Time
	InMonth   bool
	Today     bool
	OpenSlots int
}

// MonthGrid returns the 42 consecutive days shown for the month containing
// ref: complete weeks starting on a Monday, left-padded with trailing days of
// the prior month and right-padded with leading days of the next.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())

	// Monday-first: Go's Sunday (0) maps to position 6.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	days := make([]time.Time, gridSize)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// BuildMonth derives the calendar cells for the month containing ref.
// reservedByDay maps yyyy-MM-dd keys to the slots already booked that day.
func BuildMonth(ref time.Time, cfg Configuration, reservedByDay map[string][]Slot, now time.Time) []Cell {
	today := truncateToDay(now)

	cells := make([]Cell, 0, gridSize)
	for _, day := range MonthGrid(ref) {
		open := 0
		if DayAvailable(day, cfg, now) {
			open = len(AvailableSlots(day, cfg, reservedByDay[DayKey(day)], now))
		}
		cells = append(cells, Cell{
			Day:       day,
			InMonth:   day.Month() == ref.Month() && day.Year() == ref.Year(),
			Today:     day.Equal(today),
			OpenSlots: open,
		})
	}
	return cells
}
