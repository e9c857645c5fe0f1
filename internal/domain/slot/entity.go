package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrInvalidCapacity   = errors.New("capacity cannot be negative")
)

// TimeWindow is a half-open interval [start, end) within one day.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time   { return w.end }

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps uses the strict-inequality rule, so windows that merely touch at a
// boundary do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

// Slot is a fixed-capacity time window for a non-hotel service on one date.
// Capacity is decremented as bookings consume it and restored when they are
// released; it never drops below zero.
type Slot struct {
	id        uuid.UUID
	serviceID uuid.UUID
	date      time.Time
	window    TimeWindow
	capacity  int32
}

func NewSlot(serviceID uuid.UUID, date time.Time, window TimeWindow, capacity int32) (*Slot, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Slot{
		id:        uuid.New(),
		serviceID: serviceID,
		date:      date.UTC().Truncate(24 * time.Hour),
		window:    window,
		capacity:  capacity,
	}, nil
}

func ReconstructSlot(id, serviceID uuid.UUID, date time.Time, window TimeWindow, capacity int32) *Slot {
	return &Slot{id: id, serviceID: serviceID, date: date, window: window, capacity: capacity}
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) ServiceID() uuid.UUID { return s.serviceID }
func (s *Slot) Date() time.Time      { return s.date }
func (s *Slot) Window() TimeWindow   { return s.window }
func (s *Slot) Capacity() int32      { return s.capacity }

func (s *Slot) IsFull() bool {
	return s.capacity <= 0
}

func (s *Slot) HasCapacity(quantity int32) bool {
	return s.capacity >= quantity
}
