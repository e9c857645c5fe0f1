package shared

import (
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/user"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceStandard ServiceType = "STANDARD"
	ServiceHotel    ServiceType = "HOTEL"
)

// Write-side snapshots keep the command layer off the read-side query types.
type ServiceSnapshot struct {
	ID                   uuid.UUID
	EstablishmentID      uuid.UUID
	Name                 string
	Type                 ServiceType
	BasePriceCents       int64
	Active               bool
	RequiresConfirmation bool
}

type SlotSnapshot struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Capacity  int32
}

type RoomSnapshot struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	Number    string
	Status    string
}

type ExtraSnapshot struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	Name        string
	PriceCents  int64
	MaxQuantity int32
}

type MembershipSnapshot struct {
	UserID          uuid.UUID
	EstablishmentID uuid.UUID
	Role            user.MembershipRole
}

// BookingOwnership is the minimal projection used by authorization and
// reversal arithmetic without materializing the full booking.
type BookingOwnership struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	EstablishmentID uuid.UUID
	Status          booking.Status
	AvailabilityID  *uuid.UUID
	RoomID          *uuid.UUID
	Quantity        int32
	ServiceType     ServiceType
}

// BookingExtraLine is a priced extra line item written with the booking row.
type BookingExtraLine struct {
	ExtraID    uuid.UUID
	Quantity   int32
	PriceCents int64
}
