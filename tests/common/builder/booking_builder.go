//go:build unit || e2e

package builder

import (
	"time"

	reqdto "bookwise/internal/handler/dto/request"
	"bookwise/internal/usecase/queries"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID      uuid.UUID
	EstablishmentID uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	ServiceType     string
	AvailabilityID  uuid.UUID
	Quantity        int32
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		CustomerID:      uuid.New(),
		EstablishmentID: uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Morning Yoga",
		ServiceType:     string(shared.ServiceStandard),
		AvailabilityID:  uuid.New(),
		Quantity:        2,
		TotalPriceCents: 10000,
		Status:          "CONFIRMED",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	availabilityID := b.AvailabilityID
	return reqdto.CreateBookingRequest{
		ServiceID:      b.ServiceID,
		AvailabilityID: &availabilityID,
		Quantity:       b.Quantity,
	}
}

func (b *BookingBuilder) BuildHotelCreateRequestDTO(checkIn, checkOut time.Time) reqdto.CreateBookingRequest {
	guestName := "Test Guest"
	return reqdto.CreateBookingRequest{
		ServiceID:    b.ServiceID,
		Quantity:     1,
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
		GuestName:    &guestName,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	id := uuid.New()
	availabilityID := b.AvailabilityID
	return &queries.BookingView{
		ID:              id,
		CustomerID:      b.CustomerID,
		EstablishmentID: b.EstablishmentID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		ServiceType:     b.ServiceType,
		AvailabilityID:  &availabilityID,
		Quantity:        b.Quantity,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItemQuery() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:              uuid.New(),
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		Status:          b.Status,
		Quantity:        b.Quantity,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
	}
}
