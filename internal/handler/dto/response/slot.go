package response

import (
	"time"

	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Capacity  int32     `json:"capacity"`
}

func FromSlotSnapshot(snap *shared.SlotSnapshot) *SlotResponse {
	return &SlotResponse{
		ID:        snap.ID,
		ServiceID: snap.ServiceID,
		Date:      snap.Date,
		StartTime: snap.StartTime,
		EndTime:   snap.EndTime,
		Capacity:  snap.Capacity,
	}
}

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
}

func FromRoomSnapshot(snap *shared.RoomSnapshot) *RoomResponse {
	return &RoomResponse{
		ID:        snap.ID,
		ServiceID: snap.ServiceID,
		Number:    snap.Number,
		Status:    snap.Status,
	}
}
