package api

import (
	"net/http"

	reqdto "hoster-calendar/internal/handler/dto/request"
	resdto "hoster-calendar/internal/handler/dto/response"
	"hoster-calendar/internal/handler/httperr"
	"hoster-calendar/internal/handler/middleware"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/internal/usecase/commands"
	"hoster-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q}
}

// @Summary Booking window
// @Description Current booking window: navigation ceiling and bookable-until label
// @Tags calendar
// @Produce json
// @Success 200 {object} resdto.WindowResponse
// @Router /api/calendar/window [get]
func (h *CalendarHandler) Window(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromWindowView(h.q.Window(c.Request.Context())))
}

// @Summary Refresh calendar
// @Description Drop the cached calendar snapshot and fetch a fresh one
// @Tags calendar
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 502 {object} httperr.Response
// @Router /api/calendar/refresh [post]
func (h *CalendarHandler) Refresh(c *gin.Context) {
	result, err := h.cmds.Refresh(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefreshResult(result))
}

// @Summary List listings
// @Description Listings of the host with their connected channels
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Failure 502 {object} httperr.Response
// @Router /api/listings [get]
func (h *CalendarHandler) ListListings(c *gin.Context) {
	listings, err := h.q.ListListings(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	resp, err := resdto.FromListings(listings)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Month calendar
// @Description Per-day availability of one listing for a month inside the booking window
// @Tags calendar
// @Produce json
// @Param listingId path string true "Listing ID"
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} resdto.MonthResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/listings/{listingId}/calendar [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	var uri reqdto.ListingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing", nil)
		return
	}
	var query reqdto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	month, err := query.ParseMonth()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}

	view, err := h.q.GetMonth(c.Request.Context(), uri.ListingID, month)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}

// @Summary Day detail
// @Description Status of one day and, when reserved, the reservation occupying it
// @Tags calendar
// @Produce json
// @Param listingId path string true "Listing ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/listings/{listingId}/calendar/days/{date} [get]
func (h *CalendarHandler) GetDay(c *gin.Context) {
	var uri reqdto.DayURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	date, err := uri.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.GetDay(c.Request.Context(), uri.ListingID, date)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayView(view))
}

// @Summary Toggle day
// @Description Block an available day or unblock a blocked one. Reserved days return their reservation unchanged.
// @Tags calendar
// @Produce json
// @Param listingId path string true "Listing ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param Idempotency-Key header string false "Idempotency key (uuid) forwarded to the backend; generated when absent"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/listings/{listingId}/calendar/days/{date}/toggle [post]
func (h *CalendarHandler) ToggleDay(c *gin.Context) {
	var uri reqdto.DayURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	date, err := uri.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	result, err := h.cmds.ToggleDay(c.Request.Context(), commands.ToggleDayParams{
		ListingID:      uri.ListingID,
		Date:           date,
		IdempotencyKey: middleware.GetIdempotencyKey(c),
	})
	if err != nil {
		var detail any
		if result != nil {
			detail = resdto.FromToggleResult(result)
		}
		abortWithUsecaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToggleResult(result))
}

// @Summary Next check-in
// @Description Earliest confirmed stay of the listing starting today or later
// @Tags listings
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {object} resdto.NextCheckInResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/listings/{listingId}/next-check-in [get]
func (h *CalendarHandler) NextCheckIn(c *gin.Context) {
	var uri reqdto.ListingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing", nil)
		return
	}

	detail, err := h.q.NextCheckIn(c.Request.Context(), uri.ListingID)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	var resp resdto.NextCheckInResponse
	if detail != nil {
		resp.Reservation = resdto.FromReservationDetail(*detail)
	}
	c.JSON(http.StatusOK, resp)
}

func abortWithUsecaseError(c *gin.Context, err error, detail any) {
	switch {
	case errs.Is(err, errs.ErrListingNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeListingNotFound, err, "Listing not found", detail)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeReservationNotFound, err, "Reservation not found", detail)
	case errs.Is(err, errs.ErrMonthOutOfRange):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, httperr.CodeOutsideWindow, err, "Month outside booking window", detail)
	case errs.Is(err, errs.ErrDateOutsideWindow):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, httperr.CodeOutsideWindow, err, "Date outside booking window", detail)
	case errs.Is(err, errs.ErrToggleInFlight):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeToggleInFlight, err, "Calendar update already in progress", detail)
	case errs.Is(err, errs.ErrMutationFailed):
		httperr.AbortWithCode(c, http.StatusBadGateway, httperr.CodeUpstreamFailed, err, "Failed to update calendar", detail)
	case errs.Is(err, errs.ErrReservationActionFailed):
		httperr.AbortWithCode(c, http.StatusBadGateway, httperr.CodeUpstreamFailed, err, "Failed to update reservation", detail)
	case errs.Is(err, errs.ErrCalendarUnavailable):
		httperr.AbortWithCode(c, http.StatusBadGateway, httperr.CodeUpstreamFailed, err, "Calendar data unavailable", detail)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", detail)
	}
}
