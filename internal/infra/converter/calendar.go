package converter

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/infra/wire"
)

// SnapshotToDomain drops records that cannot be interpreted and logs them, so one
// malformed reservation never hides the rest of the calendar.
func SnapshotToDomain(logger *slog.Logger, resp wire.CalendarResponse, fetchedAt time.Time) *calendar.Snapshot {
	snap := &calendar.Snapshot{
		Listings:     make([]calendar.Listing, 0, len(resp.Listings)),
		Reservations: make([]calendar.Reservation, 0, len(resp.Reservations)),
		Blocks:       make([]calendar.DayBlock, 0, len(resp.CalendarDays)),
		FetchedAt:    fetchedAt,
	}

	for _, l := range resp.Listings {
		snap.Listings = append(snap.Listings, ListingToDomain(l))
	}

	for _, r := range resp.Reservations {
		res, err := ReservationToDomain(r)
		if err != nil {
			logger.Warn("skipping malformed reservation", "reservation_id", r.ID, "error", err)
			continue
		}
		snap.Reservations = append(snap.Reservations, res)
	}

	for _, d := range resp.CalendarDays {
		block, err := DayBlockToDomain(d)
		if err != nil {
			logger.Warn("skipping malformed calendar day", "listing_id", d.ListingID, "date", d.Date, "error", err)
			continue
		}
		snap.Blocks = append(snap.Blocks, block)
	}

	return snap
}

func ListingToDomain(l wire.Listing) calendar.Listing {
	channels := make([]calendar.ChannelRef, 0, len(l.Channels))
	for _, ch := range l.Channels {
		channels = append(channels, calendar.ChannelRef{
			Key:  calendar.ChannelKey(ch.ChannelKey),
			Name: ch.ChannelName,
		})
	}
	return calendar.Listing{ID: l.ID, Name: l.Name, Channels: channels}
}

func ReservationToDomain(r wire.Reservation) (calendar.Reservation, error) {
	checkIn, err := parseWireDate(r.CheckIn)
	if err != nil {
		return calendar.Reservation{}, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := parseWireDate(r.CheckOut)
	if err != nil {
		return calendar.Reservation{}, fmt.Errorf("checkOut: %w", err)
	}
	stay, err := calendar.NewDateRange(checkIn, checkOut)
	if err != nil {
		return calendar.Reservation{}, err
	}

	res := calendar.Reservation{
		ID:        r.ID,
		ListingID: r.ListingID,
		GuestName: r.GuestName,
		Stay:      stay,
		// status matching is exact; a lowercase "confirmed" is not a confirmation
		Status: calendar.ReservationStatus(r.Status),
	}

	if r.TotalAmount != nil {
		money := calendar.Money{Cents: int64(math.Round(*r.TotalAmount * 100))}
		if r.Currency != nil {
			money.Currency = strings.ToUpper(*r.Currency)
		}
		res.Total = &money
	}

	if r.ChannelKey != nil && *r.ChannelKey != "" {
		key := calendar.ChannelKey(*r.ChannelKey)
		res.OriginatingChannel = &key
	}

	return res, nil
}

func DayBlockToDomain(d wire.CalendarDay) (calendar.DayBlock, error) {
	date, err := parseWireDate(d.Date)
	if err != nil {
		return calendar.DayBlock{}, err
	}
	return calendar.DayBlock{
		ListingID: d.ListingID,
		Date:      date,
		Status:    calendar.BlockStatus(d.Status),
	}, nil
}

func BlockRequestToWire(req calendar.BlockRequest) wire.BlockRequest {
	return wire.BlockRequest{
		ListingID: req.ListingID,
		Date:      req.Date.String(),
		Block:     req.Block,
	}
}

func ChannelResultsToDomain(results []wire.ChannelResult) []calendar.ChannelSyncResult {
	if len(results) == 0 {
		return nil
	}
	out := make([]calendar.ChannelSyncResult, 0, len(results))
	for _, r := range results {
		res := calendar.ChannelSyncResult{
			ChannelKey:  calendar.ChannelKey(r.ChannelKey),
			ChannelName: r.ChannelName,
			Success:     r.Success,
		}
		if r.Error != nil {
			res.Error = *r.Error
		}
		out = append(out, res)
	}
	return out
}

// parseWireDate accepts "YYYY-MM-DD" and tolerates a trailing time component
// ("2026-06-01T00:00:00Z"), keeping only the calendar date as written. Any other
// suffix is rejected.
func parseWireDate(s string) (calendar.Date, error) {
	n := len(calendar.DateLayout)
	if len(s) > n && s[n] == 'T' {
		s = s[:n]
	}
	return calendar.ParseDate(s)
}
