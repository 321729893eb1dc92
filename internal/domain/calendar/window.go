package calendar

import "time"

const (
	// TODO: move both to per-host settings once the backend exposes its own horizon.
	DefaultHorizonMonths     = 12
	DefaultLabelOffsetMonths = 1
)

// BookingWindow bounds the months a host may view and the days a host may block.
type BookingWindow struct {
	HorizonMonths     int
	LabelOffsetMonths int
}

func DefaultBookingWindow() BookingWindow {
	return BookingWindow{
		HorizonMonths:     DefaultHorizonMonths,
		LabelOffsetMonths: DefaultLabelOffsetMonths,
	}
}

func NewBookingWindow(horizonMonths, labelOffsetMonths int) BookingWindow {
	w := DefaultBookingWindow()
	if horizonMonths > 0 {
		w.HorizonMonths = horizonMonths
	}
	if labelOffsetMonths >= 0 && labelOffsetMonths < w.HorizonMonths {
		w.LabelOffsetMonths = labelOffsetMonths
	}
	return w
}

// MaximumNavigableMonth is the first day of the month HorizonMonths after now.
// Neither navigation nor blocking may reach it.
func (w BookingWindow) MaximumNavigableMonth(now time.Time) Date {
	return MonthOf(now).AddMonths(w.HorizonMonths).FirstDay()
}

// BookableUntil is the last day of the month LabelOffsetMonths before the ceiling.
func (w BookingWindow) BookableUntil(now time.Time) Date {
	return MonthOf(now).AddMonths(w.HorizonMonths - w.LabelOffsetMonths).LastDay()
}

func (w BookingWindow) BookableUntilLabel(now time.Time) string {
	return w.BookableUntil(now).Format(LabelLayout)
}

func (w BookingWindow) CanAdvanceMonth(current Month, now time.Time) bool {
	return current.AddMonths(1).FirstDay().Before(w.MaximumNavigableMonth(now))
}

func (w BookingWindow) CanRetreatMonth(current Month, now time.Time) bool {
	return MonthOf(now).Before(current)
}

// Navigable reports whether month m may be displayed at all.
func (w BookingWindow) Navigable(m Month, now time.Time) bool {
	return !m.Before(MonthOf(now)) && m.FirstDay().Before(w.MaximumNavigableMonth(now))
}

// Contains reports today <= d < MaximumNavigableMonth.
func (w BookingWindow) Contains(d Date, now time.Time) bool {
	return !d.Before(DateOf(now)) && d.Before(w.MaximumNavigableMonth(now))
}

func MaximumNavigableMonth(now time.Time) Date {
	return DefaultBookingWindow().MaximumNavigableMonth(now)
}

func BookableUntilLabel(now time.Time) string {
	return DefaultBookingWindow().BookableUntilLabel(now)
}

func CanAdvanceMonth(current Month, now time.Time) bool {
	return DefaultBookingWindow().CanAdvanceMonth(current, now)
}
