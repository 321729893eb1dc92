package api

import (
	"context"
	"net/http"

	reqdto "hoster-calendar/internal/handler/dto/request"
	"hoster-calendar/internal/handler/httperr"
	"hoster-calendar/internal/handler/middleware"
	"hoster-calendar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Accept reservation
// @Description Accept a pending reservation. The decision is made by the backend; the cached calendar is dropped.
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Param Idempotency-Key header string false "Idempotency key (uuid) forwarded to the backend; generated when absent"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/reservations/{id}/accept [post]
func (h *ReservationHandler) Accept(c *gin.Context) {
	h.decide(c, h.cmds.Accept)
}

// @Summary Reject reservation
// @Description Reject a pending reservation. The decision is made by the backend; the cached calendar is dropped.
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Param Idempotency-Key header string false "Idempotency key (uuid) forwarded to the backend; generated when absent"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

func (h *ReservationHandler) decide(c *gin.Context, action func(ctx context.Context, reservationID string, key uuid.UUID) error) {
	var uri reqdto.ReservationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}
	if err := action(c.Request.Context(), uri.ID, middleware.GetIdempotencyKey(c)); err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
