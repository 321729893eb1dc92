//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/handler"
	"hoster-calendar/internal/handler/api"
	resdto "hoster-calendar/internal/handler/dto/response"
	"hoster-calendar/internal/handler/httperr"
	"hoster-calendar/internal/pkg/config"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/internal/usecase/commands"
	"hoster-calendar/internal/usecase/queries"
	"hoster-calendar/tests/common/builder"
	"hoster-calendar/tests/common/httptest"
	"hoster-calendar/tests/common/testutil"
	commandsmock "hoster-calendar/tests/mock/commands"
	queriesmock "hoster-calendar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const listingID = "listing-1"

type CalendarHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockCommands        *commandsmock.MockCalendarCommands
	mockQueries         *queriesmock.MockCalendarQueries
	mockReservationCmds *commandsmock.MockReservationCommands
	now                 time.Time
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.mockReservationCmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.now = builder.At("2026-06-15", time.UTC)

	handler.NewRouter(
		s.router,
		config.NewTestConfig(),
		testutil.DiscardLogger(),
		api.NewCalendarHandler(s.mockCommands, s.mockQueries),
		api.NewReservationHandler(s.mockReservationCmds),
	)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) listing() calendar.Listing {
	return calendar.Listing{
		ID:   listingID,
		Name: "Beach House",
		Channels: []calendar.ChannelRef{
			{Key: "airbnb", Name: "Airbnb"},
			{Key: "booking", Name: "Booking.com"},
		},
	}
}

func (s *CalendarHandlerTestSuite) window() queries.WindowView {
	return queries.NewWindowView(calendar.DefaultBookingWindow(), s.now)
}

// ================================================================================
// TestWindow
// ================================================================================

func (s *CalendarHandlerTestSuite) TestWindow() {
	s.mockQueries.EXPECT().Window(gomock.Any()).Return(s.window())

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar/window", nil)

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(testutil.DtoMap(s.T(), resdto.FromWindowView(s.window())), body)
	s.Equal("2027-06-01", body["maximum_navigable_month"])
	s.Equal("2027-05-31", body["bookable_until"])
	s.Equal("May 2027", body["bookable_until_label"])
}

// ================================================================================
// TestListListings
// ================================================================================

func (s *CalendarHandlerTestSuite) TestListListings() {
	url := "/api/listings"

	s.Run("success: listings with channels", func() {
		s.mockQueries.EXPECT().ListListings(gomock.Any()).
			Return([]calendar.Listing{s.listing(), {ID: "listing-2", Name: "Cabin"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal([]resdto.ChannelResponse{{Key: "airbnb", Name: "Airbnb"}, {Key: "booking", Name: "Booking.com"}}, body[0].Channels)
		s.NotNil(body[1].Channels)
		s.Empty(body[1].Channels)
	})

	s.Run("error: 502 when the calendar cannot be loaded", func() {
		s.mockQueries.EXPECT().ListListings(gomock.Any()).
			Return(nil, errs.Mark(errs.New("fetch"), errs.ErrCalendarUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Calendar data unavailable")
	})
}

// ================================================================================
// TestGetMonth
// ================================================================================

func (s *CalendarHandlerTestSuite) TestGetMonth() {
	url := "/api/listings/" + listingID + "/calendar"
	june := builder.MustMonth("2026-06")
	reservations := []calendar.Reservation{builder.NewReservationBuilder().WithStay("2026-06-20", "2026-06-23").BuildDomain()}
	blocks := []calendar.DayBlock{{ListingID: listingID, Date: builder.MustDate("2026-06-16"), Status: calendar.BlockStatusBlocked}}

	view := &queries.MonthView{
		Listing:    s.listing(),
		Grid:       calendar.BuildMonth(listingID, june, s.now, calendar.DefaultBookingWindow(), reservations, blocks),
		CanAdvance: true,
		CanRetreat: false,
		Window:     s.window(),
	}

	s.Run("success: current month when none is given", func() {
		s.mockQueries.EXPECT().GetMonth(gomock.Any(), listingID, (*calendar.Month)(nil)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.MonthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-06", body.Month)
		s.Equal("June 2026", body.Label)
		s.Len(body.Days, 30)
		s.Equal(resdto.MonthCounts{Available: 26, Blocked: 1, Reserved: 3}, body.Counts)
		s.Nil(body.PreviousMonth)
		s.Require().NotNil(body.NextMonth)
		s.Equal("2026-07", *body.NextMonth)

		s.Equal("BLOCKED", body.Days[15].Status)
		s.True(body.Days[15].Toggleable)
		s.Equal("RESERVED", body.Days[19].Status)
		s.False(body.Days[19].Toggleable)
		s.Require().NotNil(body.Days[19].GuestName)
		s.Equal("Jane Doe", *body.Days[19].GuestName)
		s.True(body.Days[0].Past)
	})

	s.Run("success: explicit month is parsed", func() {
		s.mockQueries.EXPECT().GetMonth(gomock.Any(), listingID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, m *calendar.Month) (*queries.MonthView, error) {
				s.Require().NotNil(m)
				s.Equal("2026-09", m.String())
				return view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?month=2026-09", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed month", func() {
		for _, m := range []string{"2026-13", "June", "2026-6-01"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?month="+m, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid month")
		}
	})

	s.Run("error: 422 outside the booking window", func() {
		s.mockQueries.EXPECT().GetMonth(gomock.Any(), listingID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("month 2027-06"), errs.ErrMonthOutOfRange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?month=2027-06", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Month outside booking window")
	})

	s.Run("error: 404 unknown listing", func() {
		s.mockQueries.EXPECT().GetMonth(gomock.Any(), "nope", gomock.Any()).
			Return(nil, errs.Mark(errs.New("listing nope"), errs.ErrListingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/nope/calendar", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

// ================================================================================
// TestGetDay
// ================================================================================

func (s *CalendarHandlerTestSuite) TestGetDay() {
	s.Run("success: reserved day with reservation detail", func() {
		r := builder.NewReservationBuilder().WithStay("2026-06-20", "2026-06-23").WithTotal(45000, "USD").WithChannel("airbnb").BuildDomain()
		date := builder.MustDate("2026-06-21")
		s.mockQueries.EXPECT().GetDay(gomock.Any(), listingID, date).Return(&queries.DayView{
			Listing:     s.listing(),
			Cell:        calendar.CellOf(calendar.ResolveDay(listingID, date, []calendar.Reservation{r}, nil), s.now, calendar.DefaultBookingWindow()),
			Reservation: &queries.ReservationDetail{Reservation: r, Nights: 3, ChannelName: "Airbnb"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+listingID+"/calendar/days/2026-06-21", nil)

		var body resdto.DayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("RESERVED", body.Status)
		s.Require().NotNil(body.Reservation)
		s.Equal(3, body.Reservation.Nights)
		s.Equal("2026-06-20", body.Reservation.CheckIn)
		s.Equal("2026-06-23", body.Reservation.CheckOut)
		s.Require().NotNil(body.Reservation.ChannelName)
		s.Equal("Airbnb", *body.Reservation.ChannelName)
		s.Require().NotNil(body.Reservation.TotalCents)
		s.Equal(int64(45000), *body.Reservation.TotalCents)
	})

	s.Run("error: 400 on invalid dates", func() {
		for _, d := range []string{"2026-02-30", "tomorrow", "2026-6-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+listingID+"/calendar/days/"+d, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
		}
	})
}

// ================================================================================
// TestToggleDay
// ================================================================================

func (s *CalendarHandlerTestSuite) TestToggleDay() {
	url := "/api/listings/" + listingID + "/calendar/days/2026-06-17/toggle"
	date := builder.MustDate("2026-06-17")
	blockedCell := calendar.CellOf(calendar.Resolution{ListingID: listingID, Date: date, Status: calendar.StatusBlocked}, s.now, calendar.DefaultBookingWindow())
	plan := calendar.PlanToggle(calendar.Resolution{ListingID: listingID, Date: date, Status: calendar.StatusAvailable})

	s.Run("success: forwards the client's idempotency key", func() {
		key := uuid.New()
		report := calendar.SummarizeSync([]calendar.ChannelSyncResult{
			{ChannelKey: "airbnb", ChannelName: "Airbnb", Success: true},
			{ChannelKey: "booking", ChannelName: "Booking.com", Error: "timeout"},
		})
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), commands.ToggleDayParams{ListingID: listingID, Date: date, IdempotencyKey: key}).
			Return(&commands.ToggleResult{Plan: plan, Cell: &blockedCell, Report: &report}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			httptest.IdempotencyHeaders(key.String()))

		var body resdto.ToggleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertIdempotencyKeyEchoed(s.T(), rec, key.String())
		s.Equal("block", body.Action)
		s.Require().NotNil(body.Day)
		s.Equal("BLOCKED", body.Day.Status)
		s.Require().NotNil(body.Sync)
		s.Equal("partial_failure", body.Sync.Outcome)
		s.Equal("Calendar updated, but sync failed for Booking.com", body.Sync.Message)
		s.Equal([]resdto.ChannelFailureResponse{{Channel: "Booking.com", Error: "timeout"}}, body.Sync.FailedChannels)
	})

	s.Run("success: issues a key when the client sent none", func() {
		var got uuid.UUID
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.ToggleDayParams) (*commands.ToggleResult, error) {
				got = p.IdempotencyKey
				return &commands.ToggleResult{Plan: plan, Cell: &blockedCell}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.NotEqual(uuid.Nil, got)
		s.Equal(got.String(), httptest.AssertIdempotencyKeyEchoed(s.T(), rec, ""))
	})

	s.Run("success: reserved day returns the reservation", func() {
		r := builder.NewReservationBuilder().WithStay("2026-06-16", "2026-06-19").BuildDomain()
		res := calendar.Resolution{ListingID: listingID, Date: date, Status: calendar.StatusReserved, Reservation: &r}
		cell := calendar.CellOf(res, s.now, calendar.DefaultBookingWindow())
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), gomock.Any()).
			Return(&commands.ToggleResult{Plan: calendar.PlanToggle(res), Cell: &cell}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.ToggleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("show_reservation", body.Action)
		s.Require().NotNil(body.Reservation)
		s.Equal("res-1", body.Reservation.ID)
		s.Nil(body.Sync)
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			httptest.IdempotencyHeaders("not-a-uuid"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 409 while another toggle is running", func() {
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("listing "+listingID), errs.ErrToggleInFlight))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Calendar update already in progress")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeToggleInFlight)
	})

	s.Run("error: 422 outside the booking window", func() {
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("cannot toggle"), errs.ErrDateOutsideWindow))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Date outside booking window")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, httperr.CodeOutsideWindow)
	})

	s.Run("error: 502 carries the failure report", func() {
		report := calendar.FailureReport()
		availableCell := calendar.CellOf(calendar.Resolution{ListingID: listingID, Date: date, Status: calendar.StatusAvailable}, s.now, calendar.DefaultBookingWindow())
		s.mockCommands.EXPECT().ToggleDay(gomock.Any(), gomock.Any()).
			Return(&commands.ToggleResult{Plan: plan, Cell: &availableCell, Report: &report},
				errs.Mark(errs.New("set block"), errs.ErrMutationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to update calendar")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadGateway, httperr.CodeUpstreamFailed)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		detail, ok := body["detail"].(map[string]any)
		s.Require().True(ok, rec.Body.String())
		sync, ok := detail["sync"].(map[string]any)
		s.Require().True(ok)
		s.Equal("failed", sync["outcome"])
		s.Equal(false, sync["applied"])
		day, ok := detail["day"].(map[string]any)
		s.Require().True(ok)
		s.Equal("AVAILABLE", day["status"])
	})
}

// ================================================================================
// TestNextCheckIn / TestRefresh
// ================================================================================

func (s *CalendarHandlerTestSuite) TestNextCheckIn() {
	url := "/api/listings/" + listingID + "/next-check-in"

	s.Run("success: upcoming stay", func() {
		r := builder.NewReservationBuilder().WithStay("2026-06-20", "2026-06-23").BuildDomain()
		s.mockQueries.EXPECT().NextCheckIn(gomock.Any(), listingID).
			Return(&queries.ReservationDetail{Reservation: r, Nights: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.NextCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Reservation)
		s.Equal("2026-06-20", body.Reservation.CheckIn)
		s.Nil(body.Reservation.ChannelName)
	})

	s.Run("success: null when nothing is upcoming", func() {
		s.mockQueries.EXPECT().NextCheckIn(gomock.Any(), listingID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservation": null}`, rec.Body.String())
	})
}

func (s *CalendarHandlerTestSuite) TestRefresh() {
	s.mockCommands.EXPECT().Refresh(gomock.Any()).Return(&commands.RefreshResult{
		FetchedAt:    s.now,
		Listings:     2,
		Reservations: 5,
		Blocks:       1,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/calendar/refresh", nil)

	var body resdto.RefreshResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(resdto.RefreshResponse{FetchedAt: s.now.Unix(), Listings: 2, Reservations: 5, Blocks: 1}, body)
}
