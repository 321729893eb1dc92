package calendar

import "time"

type DayCell struct {
	Resolution
	Past     bool
	InWindow bool
}

// Toggleable is true for non-reserved days inside the booking window.
func (c DayCell) Toggleable() bool {
	return c.InWindow && c.Status != StatusReserved
}

type MonthGrid struct {
	ListingID string
	Month     Month
	Days      []DayCell
}

// BuildMonth resolves every day of m. It is recomputed from the snapshot on each
// call; nothing here is cached.
func BuildMonth(listingID string, m Month, now time.Time, w BookingWindow, reservations []Reservation, blocks []DayBlock) MonthGrid {
	grid := MonthGrid{
		ListingID: listingID,
		Month:     m,
		Days:      make([]DayCell, 0, m.Days()),
	}
	for d := m.FirstDay(); !d.After(m.LastDay()); d = d.AddDays(1) {
		grid.Days = append(grid.Days, CellOf(ResolveDay(listingID, d, reservations, blocks), now, w))
	}
	return grid
}

func CellOf(res Resolution, now time.Time, w BookingWindow) DayCell {
	return DayCell{
		Resolution: res,
		Past:       res.Date.Before(DateOf(now)),
		InWindow:   w.Contains(res.Date, now),
	}
}

func (g MonthGrid) Count(status DayStatus) int {
	n := 0
	for _, c := range g.Days {
		if c.Status == status {
			n++
		}
	}
	return n
}
