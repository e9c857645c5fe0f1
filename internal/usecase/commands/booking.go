package commands

import (
	"context"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/room"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExtraSelectionRequest struct {
	ExtraID  uuid.UUID
	Quantity int32
}

// CreateBookingRequest carries either an availability slot (standard services)
// or stay dates plus an optional room (hotel services).
type CreateBookingRequest struct {
	ServiceID      uuid.UUID
	AvailabilityID *uuid.UUID
	RoomID         *uuid.UUID
	Quantity       int32
	CheckInDate    *time.Time
	CheckOutDate   *time.Time
	GuestName      *string
	GuestEmail     *string
	Extras         []ExtraSelectionRequest
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, customerID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, id, actorID uuid.UUID, reason *string) (*queries.BookingView, error)
	Confirm(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error)
	CheckIn(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error)
	CheckOut(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error)
	MarkNoShow(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, customerID uuid.UUID) (*queries.BookingView, error) {
	reads := uc.uow.CommandReads()

	svc, err := reads.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.Active {
		return nil, errs.ErrServiceInactive
	}

	initial := booking.StatusConfirmed
	if svc.RequiresConfirmation {
		initial = booking.StatusPending
	}

	quantity := req.Quantity
	if svc.Type == shared.ServiceHotel {
		// One room per hotel booking
		quantity = 1
	}

	total, extraLines, err := uc.priceBooking(ctx, reads, svc, quantity, req.Extras)
	if err != nil {
		return nil, err
	}

	var entity *booking.Booking
	if svc.Type == shared.ServiceHotel {
		entity, err = uc.prepareHotelBooking(ctx, reads, svc, req, customerID, total, initial)
	} else {
		entity, err = uc.prepareSlotBooking(ctx, reads, svc, req, customerID, quantity, total, initial)
	}
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if entity.IsHotelStay() {
			roomID := *entity.RoomID()
			stay := entity.Stay()
			if cerr := tx.Rooms().ClaimForStay(ctx, roomID, stay.CheckIn(), stay.CheckOut()); cerr != nil {
				switch {
				case infra.IsKind(cerr, infra.KindNotFound):
					return errs.ErrRoomNotFound
				case infra.IsKind(cerr, infra.KindConflict):
					return errs.ErrRoomUnavailable
				}
				return errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
			}
			if serr := tx.Rooms().UpdateStatus(ctx, roomID, room.StatusOccupied); serr != nil {
				return errs.Mark(serr, errs.ErrDatabaseOperationFailed)
			}
		} else {
			if _, derr := tx.Slots().DecrementCapacity(ctx, *entity.AvailabilityID(), entity.Quantity()); derr != nil {
				switch {
				case infra.IsKind(derr, infra.KindNotFound):
					return errs.ErrSlotNotFound
				case infra.IsKind(derr, infra.KindConflict):
					return errs.ErrCapacityExceeded
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		if cerr := tx.Bookings().Create(ctx, entity, extraLines); cerr != nil {
			return errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store
	return uc.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (uc *bookingUseCaseImpl) prepareSlotBooking(
	ctx context.Context,
	reads shared.CommandReads,
	svc *shared.ServiceSnapshot,
	req CreateBookingRequest,
	customerID uuid.UUID,
	quantity int32,
	total booking.Money,
	initial booking.Status,
) (*booking.Booking, error) {
	if req.AvailabilityID == nil {
		return nil, errs.ErrDomainValidation
	}

	slotSnap, err := reads.SlotByID(ctx, *req.AvailabilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if slotSnap.ServiceID != svc.ID {
		return nil, errs.ErrSlotMismatch
	}

	entity, err := booking.NewSlotBooking(customerID, svc.EstablishmentID, svc.ID, slotSnap.ID, quantity, total, initial)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (uc *bookingUseCaseImpl) prepareHotelBooking(
	ctx context.Context,
	reads shared.CommandReads,
	svc *shared.ServiceSnapshot,
	req CreateBookingRequest,
	customerID uuid.UUID,
	total booking.Money,
	initial booking.Status,
) (*booking.Booking, error) {
	var checkIn, checkOut time.Time
	if req.CheckInDate != nil {
		checkIn = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		checkOut = *req.CheckOutDate
	}

	stay, err := booking.NewStayPeriod(checkIn, checkOut, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	roomSnap, err := uc.selectRoom(ctx, reads, svc.ID, req.RoomID, stay)
	if err != nil {
		return nil, err
	}

	guest := booking.GuestDetails{Name: req.GuestName, Email: req.GuestEmail}
	entity, err := booking.NewHotelBooking(customerID, svc.EstablishmentID, svc.ID, roomSnap.ID, stay, guest, total, initial)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// selectRoom resolves the caller-supplied room or auto-selects one. Both the
// status check and the overlap check are repeated on the locked row inside the
// booking transaction; this pass only rejects obviously unusable requests.
func (uc *bookingUseCaseImpl) selectRoom(
	ctx context.Context,
	reads shared.CommandReads,
	serviceID uuid.UUID,
	roomID *uuid.UUID,
	stay booking.StayPeriod,
) (*shared.RoomSnapshot, error) {
	if roomID != nil {
		snap, err := reads.RoomByID(ctx, *roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrRoomNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.ServiceID != serviceID {
			return nil, errs.ErrRoomNotFound
		}
		if snap.Status != room.StatusAvailable.String() {
			return nil, errs.ErrRoomUnavailable
		}
		return snap, nil
	}

	snap, err := reads.FindAssignableRoom(ctx, serviceID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomUnavailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *bookingUseCaseImpl) priceBooking(
	ctx context.Context,
	reads shared.CommandReads,
	svc *shared.ServiceSnapshot,
	quantity int32,
	selections []ExtraSelectionRequest,
) (booking.Money, []shared.BookingExtraLine, error) {
	ids := make([]uuid.UUID, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.ExtraID)
	}

	catalog := map[string]booking.ExtraSpec{}
	prices := map[uuid.UUID]int64{}
	if len(ids) > 0 {
		snaps, err := reads.ExtrasByIDs(ctx, ids)
		if err != nil {
			return booking.Money{}, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, snap := range snaps {
			if snap.ServiceID != svc.ID {
				continue
			}
			catalog[snap.ID.String()] = booking.ExtraSpec{
				PriceCents:  snap.PriceCents,
				MaxQuantity: snap.MaxQuantity,
			}
			prices[snap.ID] = snap.PriceCents
		}
	}

	domainSelections := make([]booking.ExtraSelection, 0, len(selections))
	lines := make([]shared.BookingExtraLine, 0, len(selections))
	for _, sel := range selections {
		domainSelections = append(domainSelections, booking.ExtraSelection{
			ExtraID:  sel.ExtraID.String(),
			Quantity: sel.Quantity,
		})
		lines = append(lines, shared.BookingExtraLine{
			ExtraID:    sel.ExtraID,
			Quantity:   sel.Quantity,
			PriceCents: prices[sel.ExtraID],
		})
	}

	total, err := booking.ComputeTotal(svc.BasePriceCents, quantity, domainSelections, catalog)
	if err != nil {
		switch err {
		case booking.ErrUnknownExtra:
			return booking.Money{}, nil, errs.ErrExtraNotFound
		case booking.ErrExtraQuantityMax:
			return booking.Money{}, nil, errs.ErrExtraOverMax
		}
		return booking.Money{}, nil, err
	}
	return total, lines, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id, actorID uuid.UUID, reason *string) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		own, oerr := uc.ownership(ctx, tx, id)
		if oerr != nil {
			return oerr
		}
		if own.CustomerID != actorID {
			if aerr := requireStaff(ctx, tx.Reads(), actorID, own.EstablishmentID); aerr != nil {
				return aerr
			}
		}
		if gerr := booking.CanCancel(own.Status); gerr != nil {
			return gerr
		}

		if rerr := uc.releaseResources(ctx, tx, own); rerr != nil {
			return rerr
		}
		return uc.updateLedger(ctx, tx, id, booking.StatusCancelled, reason)
	})
	if err != nil {
		return nil, err
	}
	return uc.bookingQueries.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error) {
	// Ledger-only; runs through the unit of work for uniformity.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		own, oerr := uc.ownership(ctx, tx, id)
		if oerr != nil {
			return oerr
		}
		if aerr := requireStaff(ctx, tx.Reads(), actorID, own.EstablishmentID); aerr != nil {
			return aerr
		}
		if gerr := booking.CanConfirm(own.Status); gerr != nil {
			return gerr
		}
		return uc.updateLedger(ctx, tx, id, booking.StatusConfirmed, nil)
	})
	if err != nil {
		return nil, err
	}
	return uc.bookingQueries.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) CheckIn(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error) {
	// Occupancy was established at creation; only the ledger changes.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		own, oerr := uc.hotelOwnership(ctx, tx, id, actorID)
		if oerr != nil {
			return oerr
		}
		if gerr := booking.CanCheckIn(own.Status); gerr != nil {
			return gerr
		}
		return uc.updateLedger(ctx, tx, id, booking.StatusCheckedIn, nil)
	})
	if err != nil {
		return nil, err
	}
	return uc.bookingQueries.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) CheckOut(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		own, oerr := uc.hotelOwnership(ctx, tx, id, actorID)
		if oerr != nil {
			return oerr
		}
		if gerr := booking.CanCheckOut(own.Status); gerr != nil {
			return gerr
		}

		if lerr := uc.updateLedger(ctx, tx, id, booking.StatusCheckedOut, nil); lerr != nil {
			return lerr
		}
		return uc.releaseResources(ctx, tx, own)
	})
	if err != nil {
		return nil, err
	}
	return uc.bookingQueries.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) MarkNoShow(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		own, oerr := uc.hotelOwnership(ctx, tx, id, actorID)
		if oerr != nil {
			return oerr
		}
		if gerr := booking.CanMarkNoShow(own.Status); gerr != nil {
			return gerr
		}

		if lerr := uc.updateLedger(ctx, tx, id, booking.StatusNoShow, nil); lerr != nil {
			return lerr
		}
		return uc.releaseResources(ctx, tx, own)
	})
	if err != nil {
		return nil, err
	}
	return uc.bookingQueries.GetByIDSystem(ctx, id)
}

func (uc *bookingUseCaseImpl) ownership(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.BookingOwnership, error) {
	own, err := tx.Bookings().Ownership(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return own, nil
}

// hotelOwnership loads the projection and enforces staff plus hotel-service
// preconditions shared by check-in, check-out and no-show.
func (uc *bookingUseCaseImpl) hotelOwnership(ctx context.Context, tx shared.Tx, id, actorID uuid.UUID) (*shared.BookingOwnership, error) {
	own, err := uc.ownership(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if aerr := requireStaff(ctx, tx.Reads(), actorID, own.EstablishmentID); aerr != nil {
		return nil, aerr
	}
	if own.ServiceType != shared.ServiceHotel {
		return nil, errs.ErrHotelOnly
	}
	return own, nil
}

// releaseResources returns whatever the booking holds: slot capacity and the
// room, set back to AVAILABLE.
func (uc *bookingUseCaseImpl) releaseResources(ctx context.Context, tx shared.Tx, own *shared.BookingOwnership) error {
	if own.AvailabilityID != nil {
		if _, err := tx.Slots().IncrementCapacity(ctx, *own.AvailabilityID, own.Quantity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	if own.RoomID != nil {
		if err := tx.Rooms().UpdateStatus(ctx, *own.RoomID, room.StatusAvailable); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (uc *bookingUseCaseImpl) updateLedger(ctx context.Context, tx shared.Tx, id uuid.UUID, status booking.Status, reason *string) error {
	if err := tx.Bookings().UpdateStatus(ctx, id, status, reason, uc.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func requireStaff(ctx context.Context, reads shared.CommandReads, userID, establishmentID uuid.UUID) error {
	membership, err := reads.MembershipRole(ctx, userID, establishmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrForbidden
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if membership == nil {
		return errs.ErrForbidden
	}
	return nil
}
