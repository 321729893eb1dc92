package shared

import (
	"context"

	"hoster-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

// CalendarGateway is the calendar backend as seen by the use cases.
// A uuid.Nil idempotency key lets the gateway generate one.
type CalendarGateway interface {
	FetchCalendar(ctx context.Context) (*calendar.Snapshot, error)
	SetBlock(ctx context.Context, req calendar.BlockRequest, key uuid.UUID) ([]calendar.ChannelSyncResult, error)
	AcceptReservation(ctx context.Context, reservationID string, key uuid.UUID) error
	RejectReservation(ctx context.Context, reservationID string, key uuid.UUID) error
}
