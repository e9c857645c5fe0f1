package repository

import (
	"context"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepository is the transaction-scoped booking ledger.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, customer_id, establishment_id, service_id, availability_id, room_id,
	quantity, total_price_cents, status,
	check_in_date, check_out_date, number_of_nights, guest_name, guest_email,
	confirmed_at, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9,
	$10, $11, $12, $13, $14,
	CASE WHEN $9 = 'CONFIRMED' THEN now() END, now(), now()
)`

const createBookingExtraSQL = `
INSERT INTO booking_extras (booking_id, extra_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)`

// Create writes the booking row and its extra line items in one statement
// group; confirmed_at is stamped when the initial status is CONFIRMED.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, extras []shared.BookingExtraLine) error {
	var checkIn, checkOut pgtype.Date
	var nights pgtype.Int4
	if stay := b.Stay(); stay != nil {
		checkIn = pgtype.Date{Time: stay.CheckIn(), Valid: true}
		checkOut = pgtype.Date{Time: stay.CheckOut(), Valid: true}
		nights = pgtype.Int4{Int32: int32(stay.Nights()), Valid: true}
	}

	_, err := r.db.Exec(ctx, createBookingSQL,
		b.ID(),
		b.CustomerID(),
		b.EstablishmentID(),
		b.ServiceID(),
		pgconv.UUIDPtrToPgtype(b.AvailabilityID()),
		pgconv.UUIDPtrToPgtype(b.RoomID()),
		b.Quantity(),
		b.TotalPrice().Cents(),
		b.Status().String(),
		checkIn,
		checkOut,
		nights,
		pgconv.StringPtrToPgtype(b.Guest().Name),
		pgconv.StringPtrToPgtype(b.Guest().Email),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, line := range extras {
		if _, err := r.db.Exec(ctx, createBookingExtraSQL, b.ID(), line.ExtraID, line.Quantity, line.PriceCents); err != nil {
			return infra.WrapRepoErr("failed to create booking extra", err)
		}
	}

	return nil
}

// UpdateStatus sets the status and the single audit column matching it; all
// other audit fields stay untouched.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, reason *string, at time.Time) error {
	var sql string
	args := []any{id, status.String(), pgconv.TimeToPgtype(at)}

	switch status {
	case booking.StatusConfirmed:
		sql = `UPDATE bookings SET status = $2, confirmed_at = $3, updated_at = now() WHERE id = $1`
	case booking.StatusCancelled:
		sql = `UPDATE bookings SET status = $2, cancelled_at = $3, cancel_reason = $4, updated_at = now() WHERE id = $1`
		args = append(args, pgconv.StringPtrToPgtype(reason))
	case booking.StatusCheckedIn:
		sql = `UPDATE bookings SET status = $2, checked_in_at = $3, updated_at = now() WHERE id = $1`
	case booking.StatusCheckedOut:
		sql = `UPDATE bookings SET status = $2, checked_out_at = $3, updated_at = now() WHERE id = $1`
	case booking.StatusNoShow:
		sql = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`
	default:
		return infra.WrapRepoErr("unsupported status transition target", nil, infra.KindConflict)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

const bookingOwnershipSQL = `
SELECT b.id, b.customer_id, b.establishment_id, b.status,
       b.availability_id, b.room_id, b.quantity, s.service_type
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.id = $1`

// Ownership loads the narrow projection used by authorization and reversal
// logic without materializing the full entity.
func (r *BookingRepository) Ownership(ctx context.Context, id uuid.UUID) (*shared.BookingOwnership, error) {
	var (
		own            shared.BookingOwnership
		status         string
		serviceType    string
		availabilityID pgtype.UUID
		roomID         pgtype.UUID
	)

	row := r.db.QueryRow(ctx, bookingOwnershipSQL, id)
	err := row.Scan(&own.ID, &own.CustomerID, &own.EstablishmentID, &status,
		&availabilityID, &roomID, &own.Quantity, &serviceType)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking ownership", err)
	}

	own.Status = booking.Status(status)
	own.ServiceType = shared.ServiceType(serviceType)
	own.AvailabilityID = pgconv.UUIDPtrFromPgtype(availabilityID)
	own.RoomID = pgconv.UUIDPtrFromPgtype(roomID)

	return &own, nil
}
