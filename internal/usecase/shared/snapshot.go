package shared

import (
	"context"
	"log/slog"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/cache"
	"hoster-calendar/internal/pkg/clock"
	"hoster-calendar/internal/pkg/config"
	"hoster-calendar/internal/pkg/errs"
)

var snapshotKey = cache.Key{Kind: cache.KindCalendar}

// SnapshotStore owns the cached calendar snapshot. It is the only place the
// snapshot is fetched; everything derived from it is recomputed per request.
type SnapshotStore struct {
	gateway CalendarGateway
	cache   *cache.Store[*calendar.Snapshot]
	logger  *slog.Logger
}

func NewSnapshotStore(gateway CalendarGateway, cfg config.Config, clk clock.Clock, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{
		gateway: gateway,
		cache:   cache.NewStore[*calendar.Snapshot](cfg.Calendar.CacheTTL, clk),
		logger:  logger,
	}
}

func (s *SnapshotStore) Current(ctx context.Context) (*calendar.Snapshot, error) {
	snap, err := s.cache.Get(ctx, snapshotKey, s.load)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load calendar snapshot"), errs.ErrCalendarUnavailable)
	}
	return snap, nil
}

func (s *SnapshotStore) Invalidate() {
	n := s.cache.Invalidate(snapshotKey)
	s.logger.Debug("calendar snapshot invalidated", "entries", n)
}

// Refresh drops the cached snapshot and waits for a fresh one.
func (s *SnapshotStore) Refresh(ctx context.Context) (*calendar.Snapshot, error) {
	s.Invalidate()
	return s.Current(ctx)
}

func (s *SnapshotStore) load(ctx context.Context) (*calendar.Snapshot, error) {
	snap, err := s.gateway.FetchCalendar(ctx)
	if err != nil {
		return nil, err
	}
	for _, dup := range calendar.DoubleBookings(snap.Reservations) {
		s.logger.Warn("double booking in calendar snapshot",
			"listing_id", dup.ListingID,
			"reservation_id", dup.First.ID,
			"conflicting_reservation_id", dup.Second.ID,
		)
	}
	s.logger.Debug("calendar snapshot loaded",
		"listings", len(snap.Listings),
		"reservations", len(snap.Reservations),
		"blocks", len(snap.Blocks),
	)
	return snap, nil
}
