package request

import (
	"time"

	"bookwise/internal/usecase/commands"
)

type CreateSlotRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Capacity  int32     `json:"capacity" binding:"min=0"`
}

func (r CreateSlotRequest) ToCommand() commands.CreateSlotRequest {
	return commands.CreateSlotRequest{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Capacity:  r.Capacity,
	}
}

type UpdateSlotRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r UpdateSlotRequest) ToCommand() commands.UpdateSlotWindowRequest {
	return commands.UpdateSlotWindowRequest{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
