package request

import (
	"hoster-calendar/internal/domain/calendar"
)

type ListingURI struct {
	ListingID string `uri:"listingId" binding:"required"`
}

type DayURI struct {
	ListingID string `uri:"listingId" binding:"required"`
	Date      string `uri:"date" binding:"required,datetime=2006-01-02"`
}

func (u DayURI) ParseDate() (calendar.Date, error) {
	return calendar.ParseDate(u.Date)
}

type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// ParseMonth returns nil when no month was given.
func (q MonthQuery) ParseMonth() (*calendar.Month, error) {
	if q.Month == "" {
		return nil, nil
	}
	m, err := calendar.ParseMonth(q.Month)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type ReservationURI struct {
	ID string `uri:"id" binding:"required"`
}
