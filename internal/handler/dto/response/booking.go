package response

import (
	"time"

	"bookwise/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customerId"`
	EstablishmentID uuid.UUID  `json:"establishmentId"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	ServiceName     string     `json:"serviceName"`
	ServiceType     string     `json:"serviceType"`
	AvailabilityID  *uuid.UUID `json:"availabilityId,omitempty"`
	RoomID          *uuid.UUID `json:"roomId,omitempty"`
	RoomNumber      *string    `json:"roomNumber,omitempty"`
	Quantity        int32      `json:"quantity"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	Status          string     `json:"status"`
	CheckInDate     *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty"`
	NumberOfNights  *int32     `json:"numberOfNights,omitempty"`
	GuestName       *string    `json:"guestName,omitempty"`
	GuestEmail      *string    `json:"guestEmail,omitempty"`
	CancelReason    *string    `json:"cancelReason,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CheckedInAt     *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time `json:"checkedOutAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID  `json:"id"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	ServiceName     string     `json:"serviceName"`
	Status          string     `json:"status"`
	Quantity        int32      `json:"quantity"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	CheckInDate     *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		CustomerID:      rm.CustomerID,
		EstablishmentID: rm.EstablishmentID,
		ServiceID:       rm.ServiceID,
		ServiceName:     rm.ServiceName,
		ServiceType:     rm.ServiceType,
		AvailabilityID:  rm.AvailabilityID,
		RoomID:          rm.RoomID,
		RoomNumber:      rm.RoomNumber,
		Quantity:        rm.Quantity,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		CheckInDate:     rm.CheckInDate,
		CheckOutDate:    rm.CheckOutDate,
		NumberOfNights:  rm.NumberOfNights,
		GuestName:       rm.GuestName,
		GuestEmail:      rm.GuestEmail,
		CancelReason:    rm.CancelReason,
		ConfirmedAt:     rm.ConfirmedAt,
		CancelledAt:     rm.CancelledAt,
		CheckedInAt:     rm.CheckedInAt,
		CheckedOutAt:    rm.CheckedOutAt,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              rm.ID,
		ServiceID:       rm.ServiceID,
		ServiceName:     rm.ServiceName,
		Status:          rm.Status,
		Quantity:        rm.Quantity,
		TotalPriceCents: rm.TotalPriceCents,
		CheckInDate:     rm.CheckInDate,
		CheckOutDate:    rm.CheckOutDate,
		CreatedAt:       rm.CreatedAt,
	}
}
