package request

import (
	"strings"
	"time"

	"bookwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type ExtraSelection struct {
	ExtraID  uuid.UUID `json:"extra_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}

// CreateBookingRequest: standard services send availability_id; hotel services
// send check_in_date/check_out_date and optionally room_id.
type CreateBookingRequest struct {
	ServiceID      uuid.UUID        `json:"service_id" binding:"required"`
	AvailabilityID *uuid.UUID       `json:"availability_id,omitempty"`
	RoomID         *uuid.UUID       `json:"room_id,omitempty"`
	Quantity       int32            `json:"quantity" binding:"required,min=1"`
	CheckInDate    *time.Time       `json:"check_in_date,omitempty"`
	CheckOutDate   *time.Time       `json:"check_out_date,omitempty"`
	GuestName      *string          `json:"guest_name,omitempty"`
	GuestEmail     *string          `json:"guest_email,omitempty"`
	Extras         []ExtraSelection `json:"extras,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	extras := make([]commands.ExtraSelectionRequest, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, commands.ExtraSelectionRequest{
			ExtraID:  e.ExtraID,
			Quantity: e.Quantity,
		})
	}
	return commands.CreateBookingRequest{
		ServiceID:      r.ServiceID,
		AvailabilityID: r.AvailabilityID,
		RoomID:         r.RoomID,
		Quantity:       r.Quantity,
		CheckInDate:    r.CheckInDate,
		CheckOutDate:   r.CheckOutDate,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Extras:         extras,
	}
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
