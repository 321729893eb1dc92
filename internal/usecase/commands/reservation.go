package commands

import (
	"context"
	"log/slog"

	"hoster-calendar/internal/infra"
	"hoster-calendar/internal/pkg/errs"
	"hoster-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationAction string

const (
	ActionAccept ReservationAction = "accept"
	ActionReject ReservationAction = "reject"
)

// ReservationCommands delegates pending-booking decisions to the backend. The
// reservation itself is never edited here; the cached calendar is dropped so the
// next read reflects the backend's answer.
type ReservationCommands interface {
	Accept(ctx context.Context, reservationID string, key uuid.UUID) error
	Reject(ctx context.Context, reservationID string, key uuid.UUID) error
}

type reservationCommandsImpl struct {
	gateway   shared.CalendarGateway
	snapshots *shared.SnapshotStore
	logger    *slog.Logger
}

func NewReservationCommands(gateway shared.CalendarGateway, snapshots *shared.SnapshotStore, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{gateway: gateway, snapshots: snapshots, logger: logger}
}

func (uc *reservationCommandsImpl) Accept(ctx context.Context, reservationID string, key uuid.UUID) error {
	return uc.apply(ctx, ActionAccept, reservationID, key)
}

func (uc *reservationCommandsImpl) Reject(ctx context.Context, reservationID string, key uuid.UUID) error {
	return uc.apply(ctx, ActionReject, reservationID, key)
}

func (uc *reservationCommandsImpl) apply(ctx context.Context, action ReservationAction, reservationID string, key uuid.UUID) error {
	var err error
	switch action {
	case ActionAccept:
		err = uc.gateway.AcceptReservation(ctx, reservationID, key)
	case ActionReject:
		err = uc.gateway.RejectReservation(ctx, reservationID, key)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(errs.Wrap(err, string(action)), errs.ErrReservationNotFound)
		}
		return errs.Mark(errs.Wrap(err, string(action)), errs.ErrReservationActionFailed)
	}

	uc.snapshots.Invalidate()
	uc.logger.Info("reservation decision delegated", "reservation_id", reservationID, "action", string(action))
	return nil
}
