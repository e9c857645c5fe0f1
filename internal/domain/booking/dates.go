package booking

import (
	"errors"
	"time"
)

var (
	ErrCheckInPast     = errors.New("check-in date is in the past")
	ErrInvalidStay     = errors.New("check-in must be before check-out")
	ErrStayTooShort    = errors.New("stay must be at least one night")
	ErrMissingStayDate = errors.New("check-in and check-out dates are required")
)

// StayPeriod is a hotel stay as a half-open date range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
	nights   int
}

// NewStayPeriod validates the range against the current date at UTC midnight.
func NewStayPeriod(checkIn, checkOut, now time.Time) (StayPeriod, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayPeriod{}, ErrMissingStayDate
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return StayPeriod{}, ErrCheckInPast
	}
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStay
	}

	nights := nightCount(checkIn, checkOut)
	if nights < 1 {
		return StayPeriod{}, ErrStayTooShort
	}

	return StayPeriod{checkIn: checkIn, checkOut: checkOut, nights: nights}, nil
}

// ReconstructStayPeriod rebuilds a persisted stay without revalidating against
// the current date.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut, nights: nightCount(checkIn, checkOut)}
}

func nightCount(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }
func (p StayPeriod) Nights() int         { return p.nights }

// Overlaps reports whether this stay intersects [otherIn, otherOut). Boundary
// adjacency (same-day turnover) does not count as an overlap.
func (p StayPeriod) Overlaps(otherIn, otherOut time.Time) bool {
	return RangesOverlap(p.checkIn, p.checkOut, otherIn, otherOut)
}

// RangesOverlap is the occupancy predicate over two half-open date ranges:
// aIn < bOut && aOut > bIn.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}
