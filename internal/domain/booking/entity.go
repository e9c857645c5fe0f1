package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInitialStatus = errors.New("bookings start as PENDING or CONFIRMED")

// GuestDetails are the hotel-only guest identity fields.
type GuestDetails struct {
	Name  *string
	Email *string
}

// Booking is the authoritative reservation record. Slot bookings consume
// fixed slot capacity; hotel bookings hold one room for a stay period.
type Booking struct {
	id              uuid.UUID
	customerID      uuid.UUID
	establishmentID uuid.UUID
	serviceID       uuid.UUID
	availabilityID  *uuid.UUID
	roomID          *uuid.UUID
	quantity        int32
	totalPrice      Money
	status          Status
	stay            *StayPeriod
	guest           GuestDetails
	cancelReason    *string
	confirmedAt     *time.Time
	cancelledAt     *time.Time
	checkedInAt     *time.Time
	checkedOutAt    *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewSlotBooking(
	customerID, establishmentID, serviceID, availabilityID uuid.UUID,
	quantity int32,
	total Money,
	initial Status,
) (*Booking, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if initial != StatusPending && initial != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}

	slotID := availabilityID
	return &Booking{
		id:              uuid.New(),
		customerID:      customerID,
		establishmentID: establishmentID,
		serviceID:       serviceID,
		availabilityID:  &slotID,
		quantity:        quantity,
		totalPrice:      total,
		status:          initial,
	}, nil
}

// NewHotelBooking holds exactly one room; quantity is fixed at 1.
func NewHotelBooking(
	customerID, establishmentID, serviceID, roomID uuid.UUID,
	stay StayPeriod,
	guest GuestDetails,
	total Money,
	initial Status,
) (*Booking, error) {
	if initial != StatusPending && initial != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}

	rID := roomID
	return &Booking{
		id:              uuid.New(),
		customerID:      customerID,
		establishmentID: establishmentID,
		serviceID:       serviceID,
		roomID:          &rID,
		quantity:        1,
		totalPrice:      total,
		status:          initial,
		stay:            &stay,
		guest:           guest,
	}, nil
}

func Reconstruct(
	id, customerID, establishmentID, serviceID uuid.UUID,
	availabilityID, roomID *uuid.UUID,
	quantity int32,
	total Money,
	status Status,
	stay *StayPeriod,
	guest GuestDetails,
	cancelReason *string,
	confirmedAt, cancelledAt, checkedInAt, checkedOutAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		customerID:      customerID,
		establishmentID: establishmentID,
		serviceID:       serviceID,
		availabilityID:  availabilityID,
		roomID:          roomID,
		quantity:        quantity,
		totalPrice:      total,
		status:          status,
		stay:            stay,
		guest:           guest,
		cancelReason:    cancelReason,
		confirmedAt:     confirmedAt,
		cancelledAt:     cancelledAt,
		checkedInAt:     checkedInAt,
		checkedOutAt:    checkedOutAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) IsHotelStay() bool {
	return b.stay != nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) CustomerID() uuid.UUID      { return b.customerID }
func (b *Booking) EstablishmentID() uuid.UUID { return b.establishmentID }
func (b *Booking) ServiceID() uuid.UUID       { return b.serviceID }
func (b *Booking) AvailabilityID() *uuid.UUID { return b.availabilityID }
func (b *Booking) RoomID() *uuid.UUID         { return b.roomID }
func (b *Booking) Quantity() int32            { return b.quantity }
func (b *Booking) TotalPrice() Money          { return b.totalPrice }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Stay() *StayPeriod          { return b.stay }
func (b *Booking) Guest() GuestDetails        { return b.guest }
func (b *Booking) CancelReason() *string      { return b.cancelReason }
func (b *Booking) ConfirmedAt() *time.Time    { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time    { return b.cancelledAt }
func (b *Booking) CheckedInAt() *time.Time    { return b.checkedInAt }
func (b *Booking) CheckedOutAt() *time.Time   { return b.checkedOutAt }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
