package queries

import (
	"context"
	"log/slog"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/internal/usecase/shared"
)

type WindowView struct {
	Today                 calendar.Date
	CurrentMonth          calendar.Month
	MaximumNavigableMonth calendar.Date
	BookableUntil         calendar.Date
	BookableUntilLabel    string
	HorizonMonths         int
}

type ReservationDetail struct {
	Reservation calendar.Reservation
	Nights      int
	// empty for direct bookings
	ChannelName string
}

type MonthView struct {
	Listing    calendar.Listing
	Grid       calendar.MonthGrid
	CanAdvance bool
	CanRetreat bool
	// a toggle for this listing has not finished yet
	Pending bool
	Window  WindowView
}

type DayView struct {
	Listing     calendar.Listing
	Cell        calendar.DayCell
	Reservation *ReservationDetail
	Conflicts   []ReservationDetail
	Pending     bool
}

type CalendarQueries interface {
	Window(ctx context.Context) WindowView
	ListListings(ctx context.Context) ([]calendar.Listing, error)
	// GetMonth shows the current month when month is nil.
	GetMonth(ctx context.Context, listingID string, month *calendar.Month) (*MonthView, error)
	GetDay(ctx context.Context, listingID string, date calendar.Date) (*DayView, error)
	// NextCheckIn returns nil without error when nothing is upcoming.
	NextCheckIn(ctx context.Context, listingID string) (*ReservationDetail, error)
}

type calendarQueriesImpl struct {
	snapshots *shared.SnapshotStore
	guard     *shared.InflightGuard
	host      *shared.HostCalendar
	logger    *slog.Logger
}

func NewCalendarQueries(snapshots *shared.SnapshotStore, guard *shared.InflightGuard, host *shared.HostCalendar, logger *slog.Logger) CalendarQueries {
	return &calendarQueriesImpl{
		snapshots: snapshots,
		guard:     guard,
		host:      host,
		logger:    logger,
	}
}

func (q *calendarQueriesImpl) Window(_ context.Context) WindowView {
	return NewWindowView(q.host.Window(), q.host.Now())
}

func (q *calendarQueriesImpl) ListListings(ctx context.Context) ([]calendar.Listing, error) {
	snap, err := q.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Listings, nil
}

func (q *calendarQueriesImpl) GetMonth(ctx context.Context, listingID string, month *calendar.Month) (*MonthView, error) {
	now := q.host.Now()
	w := q.host.Window()

	m := calendar.MonthOf(now)
	if month != nil {
		m = *month
	}
	if !w.Navigable(m, now) {
		return nil, errs.Markf(errs.ErrMonthOutOfRange, "month %s is not navigable", m)
	}

	snap, err := q.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	listing, ok := snap.Listing(listingID)
	if !ok {
		return nil, errs.Markf(errs.ErrListingNotFound, "listing %s", listingID)
	}

	grid := calendar.BuildMonth(listingID, m, now, w, snap.Reservations, snap.Blocks)
	for _, cell := range grid.Days {
		if cell.DoubleBooked() {
			q.logger.Warn("double-booked day", "listing_id", listingID, "date", cell.Date.String(), "conflicts", len(cell.Conflicts))
		}
	}

	return &MonthView{
		Listing:    listing,
		Grid:       grid,
		CanAdvance: w.CanAdvanceMonth(m, now),
		CanRetreat: w.CanRetreatMonth(m, now),
		Pending:    q.guard.InFlight(listingID),
		Window:     NewWindowView(w, now),
	}, nil
}

func (q *calendarQueriesImpl) GetDay(ctx context.Context, listingID string, date calendar.Date) (*DayView, error) {
	snap, err := q.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	listing, ok := snap.Listing(listingID)
	if !ok {
		return nil, errs.Markf(errs.ErrListingNotFound, "listing %s", listingID)
	}

	now := q.host.Now()
	cell := calendar.CellOf(calendar.ResolveDay(listingID, date, snap.Reservations, snap.Blocks), now, q.host.Window())

	view := &DayView{
		Listing: listing,
		Cell:    cell,
		Pending: q.guard.InFlight(listingID),
	}
	if cell.Reservation != nil {
		detail := NewReservationDetail(listing, *cell.Reservation)
		view.Reservation = &detail
	}
	for _, c := range cell.Conflicts {
		view.Conflicts = append(view.Conflicts, NewReservationDetail(listing, c))
	}
	return view, nil
}

func (q *calendarQueriesImpl) NextCheckIn(ctx context.Context, listingID string) (*ReservationDetail, error) {
	snap, err := q.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	listing, ok := snap.Listing(listingID)
	if !ok {
		return nil, errs.Markf(errs.ErrListingNotFound, "listing %s", listingID)
	}

	next, found := calendar.NextCheckIn(listingID, q.host.Today(), snap.Reservations)
	if !found {
		return nil, nil
	}
	detail := NewReservationDetail(listing, next)
	return &detail, nil
}

func NewWindowView(w calendar.BookingWindow, now time.Time) WindowView {
	return WindowView{
		Today:                 calendar.DateOf(now),
		CurrentMonth:          calendar.MonthOf(now),
		MaximumNavigableMonth: w.MaximumNavigableMonth(now),
		BookableUntil:         w.BookableUntil(now),
		BookableUntilLabel:    w.BookableUntilLabel(now),
		HorizonMonths:         w.HorizonMonths,
	}
}

func NewReservationDetail(listing calendar.Listing, r calendar.Reservation) ReservationDetail {
	detail := ReservationDetail{Reservation: r, Nights: r.Nights()}
	if r.OriginatingChannel != nil {
		if name, ok := listing.ChannelName(*r.OriginatingChannel); ok {
			detail.ChannelName = name
		} else {
			detail.ChannelName = string(*r.OriginatingChannel)
		}
	}
	return detail
}
