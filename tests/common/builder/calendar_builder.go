//go:build unit || e2e

package builder

import (
	"time"

	"hoster-calendar/internal/domain/calendar"
)

type ReservationBuilder struct {
	ID         string
	ListingID  string
	GuestName  string
	CheckIn    string
	CheckOut   string
	Status     calendar.ReservationStatus
	TotalCents *int64
	Currency   string
	ChannelKey *string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        "res-1",
		ListingID: "listing-1",
		GuestName: "Jane Doe",
		CheckIn:   "2026-06-01",
		CheckOut:  "2026-06-04",
		Status:    calendar.ReservationConfirmed,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() calendar.Reservation {
	r := calendar.Reservation{
		ID:        b.ID,
		ListingID: b.ListingID,
		GuestName: b.GuestName,
		Stay: calendar.DateRange{
			CheckIn:  MustDate(b.CheckIn),
			CheckOut: MustDate(b.CheckOut),
		},
		Status: b.Status,
	}
	if b.TotalCents != nil {
		r.Total = &calendar.Money{Cents: *b.TotalCents, Currency: b.Currency}
	}
	if b.ChannelKey != nil {
		key := calendar.ChannelKey(*b.ChannelKey)
		r.OriginatingChannel = &key
	}
	return r
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithListingID(listingID string) *ReservationBuilder {
	b.ListingID = listingID
	return b
}

func (b *ReservationBuilder) WithGuestName(name string) *ReservationBuilder {
	b.GuestName = name
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status calendar.ReservationStatus) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTotal(cents int64, currency string) *ReservationBuilder {
	b.TotalCents = &cents
	b.Currency = currency
	return b
}

func (b *ReservationBuilder) WithChannel(key string) *ReservationBuilder {
	b.ChannelKey = &key
	return b
}

func (b *ReservationBuilder) AsPending() *ReservationBuilder {
	b.Status = calendar.ReservationPending
	return b
}

type SnapshotBuilder struct {
	snapshot calendar.Snapshot
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{snapshot: calendar.Snapshot{FetchedAt: time.Now()}}
}

func (b *SnapshotBuilder) WithListing(id, name string, channels ...calendar.ChannelRef) *SnapshotBuilder {
	b.snapshot.Listings = append(b.snapshot.Listings, calendar.Listing{ID: id, Name: name, Channels: channels})
	return b
}

func (b *SnapshotBuilder) WithReservation(r calendar.Reservation) *SnapshotBuilder {
	b.snapshot.Reservations = append(b.snapshot.Reservations, r)
	return b
}

func (b *SnapshotBuilder) WithBlock(listingID, date string) *SnapshotBuilder {
	b.snapshot.Blocks = append(b.snapshot.Blocks, calendar.DayBlock{
		ListingID: listingID,
		Date:      MustDate(date),
		Status:    calendar.BlockStatusBlocked,
	})
	return b
}

func (b *SnapshotBuilder) Build() *calendar.Snapshot {
	s := b.snapshot
	return &s
}

func MustDate(s string) calendar.Date {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func MustMonth(s string) calendar.Month {
	m, err := calendar.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

// At returns noon on the given date in loc, far enough from midnight that zone offsets never move the day.
func At(date string, loc *time.Location) time.Time {
	d := MustDate(date)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
}
