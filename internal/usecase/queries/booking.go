package queries

import (
	"context"
	"time"

	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingView is the full read model returned by every entry point.
type BookingView struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	EstablishmentID uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	ServiceType     string
	AvailabilityID  *uuid.UUID
	RoomID          *uuid.UUID
	RoomNumber      *string
	Quantity        int32
	TotalPriceCents int64
	Status          string
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfNights  *int32
	GuestName       *string
	GuestEmail      *string
	CancelReason    *string
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	CheckedInAt     *time.Time
	CheckedOutAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingListItem struct {
	ID              uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	Status          string
	Quantity        int32
	TotalPriceCents int64
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	CreatedAt       time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	FindByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByID enforces owner-or-staff visibility.
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error)
	// GetByIDSystem is the unscoped read used for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListOwn(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	ListByEstablishment(ctx context.Context, establishmentID, requesterID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	reads     shared.CommandReads
}

func NewBookingQueries(readStore BookingReadStore, reads shared.CommandReads) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		reads:     reads,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.CustomerID == requesterID {
		return view, nil
	}
	if err := q.requireStaff(ctx, requesterID, view.EstablishmentID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListOwn(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.readStore.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByEstablishment(ctx context.Context, establishmentID, requesterID uuid.UUID) ([]*BookingListItem, error) {
	if err := q.requireStaff(ctx, requesterID, establishmentID); err != nil {
		return nil, err
	}

	items, err := q.readStore.FindByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) requireStaff(ctx context.Context, userID, establishmentID uuid.UUID) error {
	membership, err := q.reads.MembershipRole(ctx, userID, establishmentID)
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
