package commands

import (
	"context"
	"time"

	"bookwise/internal/domain/slot"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Capacity  int32
}

type UpdateSlotWindowRequest struct {
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

type SlotCommands interface {
	// CreateSlot adds an availability slot for a service. Staff-only; the
	// window must not overlap another slot on the same service and date.
	CreateSlot(ctx context.Context, serviceID uuid.UUID, req CreateSlotRequest, actorID uuid.UUID) (*shared.SlotSnapshot, error)
	UpdateSlotWindow(ctx context.Context, slotID uuid.UUID, req UpdateSlotWindowRequest, actorID uuid.UUID) (*shared.SlotSnapshot, error)
}

type slotUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSlotUseCase(uow shared.UnitOfWork) SlotCommands {
	return &slotUseCaseImpl{uow: uow}
}

func (uc *slotUseCaseImpl) CreateSlot(ctx context.Context, serviceID uuid.UUID, req CreateSlotRequest, actorID uuid.UUID) (*shared.SlotSnapshot, error) {
	reads := uc.uow.CommandReads()

	svc, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if aerr := requireStaff(ctx, reads, actorID, svc.EstablishmentID); aerr != nil {
		return nil, aerr
	}

	window, err := slot.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.ErrDomainValidation
	}
	entity, err := slot.NewSlot(serviceID, req.Date, window, req.Capacity)
	if err != nil {
		return nil, errs.ErrDomainValidation
	}

	var created *shared.SlotSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlap, oerr := tx.Reads().SlotOverlapExists(ctx, serviceID, entity.Date(), window.Start(), window.End(), nil)
		if oerr != nil {
			return errs.Mark(oerr, errs.ErrDatabaseOperationFailed)
		}
		if overlap {
			return errs.ErrSlotOverlap
		}

		if ierr := tx.Slots().Insert(ctx, entity); ierr != nil {
			return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
		}
		created = &shared.SlotSnapshot{
			ID:        entity.ID(),
			ServiceID: entity.ServiceID(),
			Date:      entity.Date(),
			StartTime: window.Start(),
			EndTime:   window.End(),
			Capacity:  entity.Capacity(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *slotUseCaseImpl) UpdateSlotWindow(ctx context.Context, slotID uuid.UUID, req UpdateSlotWindowRequest, actorID uuid.UUID) (*shared.SlotSnapshot, error) {
	reads := uc.uow.CommandReads()

	current, err := reads.SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	svc, err := reads.ServiceByID(ctx, current.ServiceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if aerr := requireStaff(ctx, reads, actorID, svc.EstablishmentID); aerr != nil {
		return nil, aerr
	}

	window, err := slot.NewTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.ErrDomainValidation
	}

	var updated *shared.SlotSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		excludeID := slotID
		overlap, oerr := tx.Reads().SlotOverlapExists(ctx, current.ServiceID, req.Date, window.Start(), window.End(), &excludeID)
		if oerr != nil {
			return errs.Mark(oerr, errs.ErrDatabaseOperationFailed)
		}
		if overlap {
			return errs.ErrSlotOverlap
		}

		snap, uerr := tx.Slots().UpdateWindow(ctx, slotID, req.Date, window)
		if uerr != nil {
			if infra.IsKind(uerr, infra.KindNotFound) {
				return errs.ErrSlotNotFound
			}
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		updated = snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
