//go:build unit

package api_test

import (
	"net/http"

	"hoster-calendar/internal/handler/httperr"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/tests/common/httptest"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// Reservation routes share the router built in CalendarHandlerTestSuite.

func (s *CalendarHandlerTestSuite) TestAcceptReservation() {
	url := "/api/reservations/res-9/accept"

	s.Run("success: 204 and the key is forwarded", func() {
		key := uuid.New()
		s.mockReservationCmds.EXPECT().Accept(gomock.Any(), "res-9", key).Return(nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			httptest.IdempotencyHeaders(key.String()))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 unknown reservation", func() {
		s.mockReservationCmds.EXPECT().Accept(gomock.Any(), "res-9", gomock.Any()).
			Return(errs.Mark(errs.New("accept"), errs.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeReservationNotFound)
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			httptest.IdempotencyHeaders("1234"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})
}

func (s *CalendarHandlerTestSuite) TestRejectReservation() {
	url := "/api/reservations/res-9/reject"

	s.Run("success: 204", func() {
		s.mockReservationCmds.EXPECT().Reject(gomock.Any(), "res-9", gomock.Not(uuid.Nil)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 502 when the backend refuses", func() {
		s.mockReservationCmds.EXPECT().Reject(gomock.Any(), "res-9", gomock.Any()).
			Return(errs.Mark(errs.New("reject"), errs.ErrReservationActionFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to update reservation")
	})
}
