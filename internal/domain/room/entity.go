package room

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid room status")

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusCleaning    Status = "CLEANING"
	StatusMaintenance Status = "MAINTENANCE"
	StatusBlocked     Status = "BLOCKED"
)

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance, StatusBlocked:
		return true
	default:
		return false
	}
}

// Room is an individually tracked hotel resource. Date-range occupancy is
// derived from active bookings; status gates assignability independently.
type Room struct {
	id        uuid.UUID
	serviceID uuid.UUID
	number    string
	status    Status
}

func NewRoom(serviceID uuid.UUID, number string) *Room {
	return &Room{
		id:        uuid.New(),
		serviceID: serviceID,
		number:    number,
		status:    StatusAvailable,
	}
}

func ReconstructRoom(id, serviceID uuid.UUID, number string, status Status) *Room {
	return &Room{id: id, serviceID: serviceID, number: number, status: status}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) ServiceID() uuid.UUID { return r.serviceID }
func (r *Room) Number() string       { return r.number }
func (r *Room) Status() Status       { return r.status }

// IsAssignable reports whether new bookings may take this room. Date overlap
// against existing stays is checked separately, inside the booking transaction.
func (r *Room) IsAssignable() bool {
	return r.status == StatusAvailable
}
