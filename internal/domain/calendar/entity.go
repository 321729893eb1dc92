package calendar

import (
	"time"
)

type ChannelKey string

type ChannelRef struct {
	Key  ChannelKey
	Name string
}

type Listing struct {
	ID       string
	Name     string
	Channels []ChannelRef
}

func (l Listing) ChannelName(key ChannelKey) (string, bool) {
	for _, ch := range l.Channels {
		if ch.Key == key {
			return ch.Name, true
		}
	}
	return "", false
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationPending   ReservationStatus = "PENDING"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationDeclined  ReservationStatus = "DECLINED"
)

func (s ReservationStatus) String() string {
	return string(s)
}

type Money struct {
	Cents    int64
	Currency string
}

type Reservation struct {
	ID        string
	ListingID string
	GuestName string
	Stay      DateRange
	Status    ReservationStatus
	Total     *Money
	// nil when the booking was created directly rather than through a channel
	OriginatingChannel *ChannelKey
}

func (r Reservation) IsConfirmed() bool {
	return r.Status == ReservationConfirmed
}

// Occupies reports whether this reservation makes d unavailable for listingID.
func (r Reservation) Occupies(listingID string, d Date) bool {
	return r.ListingID == listingID && r.IsConfirmed() && r.Stay.ContainsDate(d)
}

func (r Reservation) Nights() int {
	return r.Stay.Nights()
}

type BlockStatus string

const BlockStatusBlocked BlockStatus = "BLOCKED"

// DayBlock is a manual block of one day. Absence of a record means not blocked.
type DayBlock struct {
	ListingID string
	Date      Date
	Status    BlockStatus
}

func (b DayBlock) Blocks(listingID string, d Date) bool {
	return b.ListingID == listingID && b.Status == BlockStatusBlocked && b.Date.Equal(d)
}

// Snapshot is one full fetch of the host's calendar dataset.
type Snapshot struct {
	Listings     []Listing
	Reservations []Reservation
	Blocks       []DayBlock
	FetchedAt    time.Time
}

func (s *Snapshot) Listing(id string) (Listing, bool) {
	for _, l := range s.Listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

func (s *Snapshot) Reservation(id string) (Reservation, bool) {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r, true
		}
	}
	return Reservation{}, false
}

// NextCheckIn returns the earliest confirmed stay of the listing starting on or after today.
func NextCheckIn(listingID string, today Date, reservations []Reservation) (Reservation, bool) {
	var (
		next  Reservation
		found bool
	)
	for _, r := range reservations {
		if r.ListingID != listingID || !r.IsConfirmed() || r.Stay.CheckIn.Before(today) {
			continue
		}
		if !found || r.Stay.CheckIn.Before(next.Stay.CheckIn) {
			next = r
			found = true
		}
	}
	return next, found
}
