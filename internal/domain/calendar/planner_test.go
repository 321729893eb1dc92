//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanToggle(t *testing.T) {
	listingID := "listing-1"
	day := builder.MustDate("2026-07-10")

	t.Run("available day plans a block request", func(t *testing.T) {
		plan := calendar.PlanToggle(calendar.ResolveDay(listingID, day, nil, nil))

		assert.Equal(t, calendar.ActionBlock, plan.Action)
		require.True(t, plan.RequiresMutation())
		assert.Equal(t, calendar.BlockRequest{ListingID: listingID, Date: day, Block: true}, *plan.Request)
	})

	t.Run("blocked day plans an unblock request", func(t *testing.T) {
		blocks := []calendar.DayBlock{{ListingID: listingID, Date: day, Status: calendar.BlockStatusBlocked}}
		plan := calendar.PlanToggle(calendar.ResolveDay(listingID, day, nil, blocks))

		assert.Equal(t, calendar.ActionUnblock, plan.Action)
		require.True(t, plan.RequiresMutation())
		assert.False(t, plan.Request.Block)
	})

	t.Run("reserved day shows the reservation and never mutates", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStay("2026-07-09", "2026-07-12").BuildDomain()
		plan := calendar.PlanToggle(calendar.ResolveDay(listingID, day, []calendar.Reservation{r}, nil))

		assert.Equal(t, calendar.ActionShowReservation, plan.Action)
		assert.False(t, plan.RequiresMutation())
		require.NotNil(t, plan.Reservation)
		assert.Equal(t, r.ID, plan.Reservation.ID)
	})

	t.Run("round trip: block then unblock after refetch", func(t *testing.T) {
		var blocks []calendar.DayBlock

		first := calendar.PlanToggle(calendar.ResolveDay(listingID, day, nil, blocks))
		require.True(t, first.Request.Block)

		// backend applied the block, refetch returns the new record
		blocks = append(blocks, calendar.DayBlock{ListingID: first.Request.ListingID, Date: first.Request.Date, Status: calendar.BlockStatusBlocked})
		afterBlock := calendar.ResolveDay(listingID, day, nil, blocks)
		require.Equal(t, calendar.StatusBlocked, afterBlock.Status)

		second := calendar.PlanToggle(afterBlock)
		require.False(t, second.Request.Block)

		blocks = nil
		assert.Equal(t, calendar.StatusAvailable, calendar.ResolveDay(listingID, day, nil, blocks).Status)
	})
}

func TestSummarizeSync(t *testing.T) {
	t.Run("no channel results is a plain update", func(t *testing.T) {
		report := calendar.SummarizeSync(nil)

		assert.Equal(t, calendar.OutcomeUpdated, report.Outcome)
		assert.Equal(t, "Calendar updated", report.Message)
		assert.True(t, report.FullSuccess())
		assert.True(t, report.Applied())
	})

	t.Run("all channels synced names every channel", func(t *testing.T) {
		report := calendar.SummarizeSync([]calendar.ChannelSyncResult{
			{ChannelKey: "airbnb", ChannelName: "Airbnb", Success: true},
			{ChannelKey: "vrbo", Success: true},
		})

		assert.Equal(t, calendar.OutcomeSynced, report.Outcome)
		assert.Equal(t, []string{"Airbnb", "vrbo"}, report.SyncedChannels)
		assert.Equal(t, "Calendar synced to Airbnb, vrbo", report.Message)
		assert.True(t, report.FullSuccess())
	})

	t.Run("partial failure names only the failed channels", func(t *testing.T) {
		report := calendar.SummarizeSync([]calendar.ChannelSyncResult{
			{ChannelKey: "airbnb", ChannelName: "Airbnb", Success: true},
			{ChannelKey: "booking", ChannelName: "Booking.com", Success: false, Error: "timeout"},
		})

		want := []calendar.ChannelFailure{{Channel: "Booking.com", Error: "timeout"}}
		if diff := cmp.Diff(want, report.FailedChannels); diff != "" {
			t.Errorf("failed channels mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, calendar.OutcomePartialFailure, report.Outcome)
		assert.Equal(t, "Calendar updated, but sync failed for Booking.com", report.Message)
		assert.NotContains(t, report.Message, "Airbnb")
		assert.False(t, report.FullSuccess())
		assert.True(t, report.Applied())
	})

	t.Run("transport failure is not applied", func(t *testing.T) {
		report := calendar.FailureReport()

		assert.Equal(t, calendar.OutcomeFailed, report.Outcome)
		assert.False(t, report.Applied())
		assert.False(t, report.FullSuccess())
	})
}

func TestBuildMonth(t *testing.T) {
	now := builder.At("2026-06-15", time.UTC)
	w := calendar.DefaultBookingWindow()
	r := builder.NewReservationBuilder().WithStay("2026-06-20", "2026-06-23").BuildDomain()
	blocks := []calendar.DayBlock{{ListingID: "listing-1", Date: builder.MustDate("2026-06-16"), Status: calendar.BlockStatusBlocked}}

	grid := calendar.BuildMonth("listing-1", builder.MustMonth("2026-06"), now, w, []calendar.Reservation{r}, blocks)

	require.Len(t, grid.Days, 30)
	assert.Equal(t, "2026-06-01", grid.Days[0].Date.String())
	assert.Equal(t, "2026-06-30", grid.Days[29].Date.String())
	assert.Equal(t, 3, grid.Count(calendar.StatusReserved))
	assert.Equal(t, 1, grid.Count(calendar.StatusBlocked))
	assert.Equal(t, 26, grid.Count(calendar.StatusAvailable))

	yesterday := grid.Days[13]
	assert.True(t, yesterday.Past)
	assert.False(t, yesterday.Toggleable())

	today := grid.Days[14]
	assert.False(t, today.Past)
	assert.True(t, today.Toggleable())

	blocked := grid.Days[15]
	assert.Equal(t, calendar.StatusBlocked, blocked.Status)
	assert.True(t, blocked.Toggleable())

	reserved := grid.Days[19]
	assert.Equal(t, calendar.StatusReserved, reserved.Status)
	assert.False(t, reserved.Toggleable())
}
