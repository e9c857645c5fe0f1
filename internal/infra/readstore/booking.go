package readstore

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.customer_id, b.establishment_id, b.service_id, s.name, s.service_type,
       b.availability_id, b.room_id, r.room_number,
       b.quantity, b.total_price_cents, b.status,
       b.check_in_date, b.check_out_date, b.number_of_nights,
       b.guest_name, b.guest_email, b.cancel_reason,
       b.confirmed_at, b.cancelled_at, b.checked_in_at, b.checked_out_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN services s ON s.id = b.service_id
LEFT JOIN rooms r ON r.id = b.room_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view           queries.BookingView
		availabilityID pgtype.UUID
		roomID         pgtype.UUID
		roomNumber     pgtype.Text
		checkIn        pgtype.Date
		checkOut       pgtype.Date
		nights         pgtype.Int4
		guestName      pgtype.Text
		guestEmail     pgtype.Text
		cancelReason   pgtype.Text
		confirmedAt    pgtype.Timestamptz
		cancelledAt    pgtype.Timestamptz
		checkedInAt    pgtype.Timestamptz
		checkedOutAt   pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, bookingViewSQL, id)
	err := row.Scan(
		&view.ID, &view.CustomerID, &view.EstablishmentID, &view.ServiceID, &view.ServiceName, &view.ServiceType,
		&availabilityID, &roomID, &roomNumber,
		&view.Quantity, &view.TotalPriceCents, &view.Status,
		&checkIn, &checkOut, &nights,
		&guestName, &guestEmail, &cancelReason,
		&confirmedAt, &cancelledAt, &checkedInAt, &checkedOutAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.AvailabilityID = pgconv.UUIDPtrFromPgtype(availabilityID)
	view.RoomID = pgconv.UUIDPtrFromPgtype(roomID)
	view.RoomNumber = pgconv.StringPtrFromPgtype(roomNumber)
	view.CheckInDate = pgconv.DatePtrFromPgtype(checkIn)
	view.CheckOutDate = pgconv.DatePtrFromPgtype(checkOut)
	view.NumberOfNights = pgconv.Int32PtrFromPgtype(nights)
	view.GuestName = pgconv.StringPtrFromPgtype(guestName)
	view.GuestEmail = pgconv.StringPtrFromPgtype(guestEmail)
	view.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	view.ConfirmedAt = pgconv.TimePtrFromPgtype(confirmedAt)
	view.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	view.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	view.CheckedOutAt = pgconv.TimePtrFromPgtype(checkedOutAt)

	return &view, nil
}

const bookingsByCustomerSQL = `
SELECT b.id, b.service_id, s.name, b.status, b.quantity, b.total_price_cents,
       b.check_in_date, b.check_out_date, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.customer_id = $1
ORDER BY b.created_at DESC`

const bookingsByEstablishmentSQL = `
SELECT b.id, b.service_id, s.name, b.status, b.quantity, b.total_price_cents,
       b.check_in_date, b.check_out_date, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.establishment_id = $1
ORDER BY b.created_at DESC`

func (r *BookingReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.findList(ctx, bookingsByCustomerSQL, customerID)
}

func (r *BookingReadStore) FindByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.findList(ctx, bookingsByEstablishmentSQL, establishmentID)
}

func (r *BookingReadStore) findList(ctx context.Context, sql string, id uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item     queries.BookingListItem
			checkIn  pgtype.Date
			checkOut pgtype.Date
		)
		if err := rows.Scan(&item.ID, &item.ServiceID, &item.ServiceName, &item.Status,
			&item.Quantity, &item.TotalPriceCents, &checkIn, &checkOut, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		item.CheckInDate = pgconv.DatePtrFromPgtype(checkIn)
		item.CheckOutDate = pgconv.DatePtrFromPgtype(checkOut)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}

	return items, nil
}
