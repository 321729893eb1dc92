package commands

import (
	"context"
	"log/slog"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ToggleDayParams struct {
	ListingID      string
	Date           calendar.Date
	IdempotencyKey uuid.UUID
}

type ToggleResult struct {
	Plan calendar.Plan
	// state of the day after the toggle; nil when the refetch that follows a
	// successful mutation failed
	Cell *calendar.DayCell
	// nil when no mutation was planned
	Report *calendar.SyncReport
}

type RefreshResult struct {
	FetchedAt    time.Time
	Listings     int
	Reservations int
	Blocks       int
}

type CalendarCommands interface {
	ToggleDay(ctx context.Context, params ToggleDayParams) (*ToggleResult, error)
	Refresh(ctx context.Context) (*RefreshResult, error)
}

type calendarCommandsImpl struct {
	gateway   shared.CalendarGateway
	snapshots *shared.SnapshotStore
	guard     *shared.InflightGuard
	host      *shared.HostCalendar
	logger    *slog.Logger
}

func NewCalendarCommands(gateway shared.CalendarGateway, snapshots *shared.SnapshotStore, guard *shared.InflightGuard, host *shared.HostCalendar, logger *slog.Logger) CalendarCommands {
	return &calendarCommandsImpl{
		gateway:   gateway,
		snapshots: snapshots,
		guard:     guard,
		host:      host,
		logger:    logger,
	}
}

// ToggleDay blocks an available day or unblocks a blocked one. Reserved days are
// never mutated; their reservation is returned instead. The block collection is
// never edited locally: after the backend confirms, the snapshot is refetched and
// the day re-resolved from it. While a mutation for the listing is running every
// toggle on it is refused, before any snapshot is read.
func (uc *calendarCommandsImpl) ToggleDay(ctx context.Context, params ToggleDayParams) (*ToggleResult, error) {
	if uc.guard.InFlight(params.ListingID) {
		return nil, errs.Markf(errs.ErrToggleInFlight, "listing %s", params.ListingID)
	}

	res, err := uc.resolve(ctx, params.ListingID, params.Date)
	if err != nil {
		return nil, err
	}
	plan := calendar.PlanToggle(res)
	if !plan.RequiresMutation() {
		return uc.resultFor(plan, res), nil
	}

	now := uc.host.Now()
	if !uc.host.Window().Contains(params.Date, now) {
		return nil, errs.Markf(errs.ErrDateOutsideWindow, "cannot toggle %s", params.Date)
	}

	release, ok := uc.guard.TryAcquire(params.ListingID)
	if !ok {
		return nil, errs.Markf(errs.ErrToggleInFlight, "listing %s", params.ListingID)
	}
	defer release()

	// another toggle may have finished between the first resolve and the acquire
	res, err = uc.resolve(ctx, params.ListingID, params.Date)
	if err != nil {
		return nil, err
	}
	plan = calendar.PlanToggle(res)
	if !plan.RequiresMutation() {
		return uc.resultFor(plan, res), nil
	}

	results, err := uc.gateway.SetBlock(ctx, *plan.Request, params.IdempotencyKey)
	if err != nil {
		report := calendar.FailureReport()
		result := uc.resultFor(plan, res)
		result.Report = &report
		return result, errs.Mark(errs.Wrap(err, "set block"), errs.ErrMutationFailed)
	}

	report := calendar.SummarizeSync(results)
	if !report.FullSuccess() {
		uc.logger.Warn("calendar change not synced to every channel",
			"listing_id", params.ListingID,
			"date", params.Date.String(),
			"failed_channels", len(report.FailedChannels),
			"message", report.Message,
		)
	}

	result := &ToggleResult{Plan: plan, Report: &report}
	snap, err := uc.snapshots.Refresh(ctx)
	if err != nil {
		uc.logger.Error("refetch after calendar change failed", "listing_id", params.ListingID, "error", err)
		return result, nil
	}
	cell := calendar.CellOf(calendar.ResolveDay(params.ListingID, params.Date, snap.Reservations, snap.Blocks), uc.host.Now(), uc.host.Window())
	result.Cell = &cell
	return result, nil
}

func (uc *calendarCommandsImpl) Refresh(ctx context.Context) (*RefreshResult, error) {
	snap, err := uc.snapshots.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{
		FetchedAt:    snap.FetchedAt,
		Listings:     len(snap.Listings),
		Reservations: len(snap.Reservations),
		Blocks:       len(snap.Blocks),
	}, nil
}

func (uc *calendarCommandsImpl) resolve(ctx context.Context, listingID string, date calendar.Date) (calendar.Resolution, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return calendar.Resolution{}, err
	}
	if _, ok := snap.Listing(listingID); !ok {
		return calendar.Resolution{}, errs.Markf(errs.ErrListingNotFound, "listing %s", listingID)
	}
	return calendar.ResolveDay(listingID, date, snap.Reservations, snap.Blocks), nil
}

func (uc *calendarCommandsImpl) resultFor(plan calendar.Plan, res calendar.Resolution) *ToggleResult {
	cell := calendar.CellOf(res, uc.host.Now(), uc.host.Window())
	return &ToggleResult{Plan: plan, Cell: &cell}
}
