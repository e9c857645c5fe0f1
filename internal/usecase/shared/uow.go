package shared

import (
	"context"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/room"
	"bookwise/internal/domain/slot"

	"github.com/google/uuid"
)

// UnitOfWork is the transaction coordinator. Every booking mutation that
// touches more than one store runs inside exactly one Within call: the
// capacity accounting and the ledger never diverge.
type UnitOfWork interface {
	// Within: one atomic transaction; tx-scoped stores commit or roll back together
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside a transaction
	CommandReads() CommandReads
}

// Tx exposes store instances bound to the active transaction's connection.
type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Rooms() RoomRepository
	Reads() CommandReads
}

// BookingRepository is the booking ledger: append-only creation, in-place
// status updates with timestamped audit fields.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking, extras []BookingExtraLine) error
	// UpdateStatus sets the status and exactly the one audit timestamp
	// matching it (cancel also records the reason).
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, reason *string, at time.Time) error
	// Ownership is a narrow projection for authorization and reversal logic.
	Ownership(ctx context.Context, id uuid.UUID) (*BookingOwnership, error)
}

// SlotRepository is the slot capacity store.
type SlotRepository interface {
	// DecrementCapacity fails with a conflict and leaves state unchanged when
	// remaining capacity is below quantity.
	DecrementCapacity(ctx context.Context, slotID uuid.UUID, quantity int32) (*SlotSnapshot, error)
	IncrementCapacity(ctx context.Context, slotID uuid.UUID, quantity int32) (*SlotSnapshot, error)
	Insert(ctx context.Context, s *slot.Slot) error
	UpdateWindow(ctx context.Context, slotID uuid.UUID, date time.Time, window slot.TimeWindow) (*SlotSnapshot, error)
}

// RoomRepository is the room occupancy store.
type RoomRepository interface {
	UpdateStatus(ctx context.Context, roomID uuid.UUID, status room.Status) error
	// ClaimForStay locks the room row, re-checks that it is AVAILABLE and that
	// no non-terminal booking overlaps [checkIn, checkOut). Must run inside
	// the same transaction that writes the ledger row.
	ClaimForStay(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) error
}

// CommandReads are the narrow collaborator lookups the write side needs.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	// FindAssignableRoom auto-selects an AVAILABLE room of the service with no
	// stay overlapping the requested range.
	FindAssignableRoom(ctx context.Context, serviceID uuid.UUID, checkIn, checkOut time.Time) (*RoomSnapshot, error)
	ExtrasByIDs(ctx context.Context, ids []uuid.UUID) ([]*ExtraSnapshot, error)
	// SlotOverlapExists backs slot create/update validation, not booking creation.
	SlotOverlapExists(ctx context.Context, serviceID uuid.UUID, date time.Time, start, end time.Time, excludeID *uuid.UUID) (bool, error)
	MembershipRole(ctx context.Context, userID, establishmentID uuid.UUID) (*MembershipSnapshot, error)
}
