package commands

import (
	"context"

	"bookwise/internal/domain/room"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	// SetStatus writes the housekeeping status directly. Staff-only; bookings
	// are not touched.
	SetStatus(ctx context.Context, roomID uuid.UUID, status string, actorID uuid.UUID) (*shared.RoomSnapshot, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) SetStatus(ctx context.Context, roomID uuid.UUID, status string, actorID uuid.UUID) (*shared.RoomSnapshot, error) {
	newStatus, err := room.NewStatus(status)
	if err != nil {
		return nil, errs.ErrDomainValidation
	}

	reads := uc.uow.CommandReads()
	snap, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	svc, err := reads.ServiceByID(ctx, snap.ServiceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if aerr := requireStaff(ctx, reads, actorID, svc.EstablishmentID); aerr != nil {
		return nil, aerr
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uerr := tx.Rooms().UpdateStatus(ctx, roomID, newStatus); uerr != nil {
			if infra.IsKind(uerr, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snap.Status = newStatus.String()
	return snap, nil
}
