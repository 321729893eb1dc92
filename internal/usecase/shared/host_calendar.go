package shared

import (
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/clock"
	"hoster-calendar/internal/pkg/config"
)

// HostCalendar reads the clock in the host's calendar zone and carries the
// configured booking window.
type HostCalendar struct {
	clock  clock.Clock
	loc    *time.Location
	window calendar.BookingWindow
}

func NewHostCalendar(clk clock.Clock, cfg config.Config) *HostCalendar {
	return &HostCalendar{
		clock:  clk,
		loc:    cfg.Calendar.Location(),
		window: calendar.NewBookingWindow(cfg.Calendar.HorizonMonths, cfg.Calendar.LabelOffsetMonths),
	}
}

func (h *HostCalendar) Now() time.Time {
	return h.clock.Now().In(h.loc)
}

func (h *HostCalendar) Today() calendar.Date {
	return calendar.DateOf(h.Now())
}

func (h *HostCalendar) Window() calendar.BookingWindow {
	return h.window
}
