package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers map these onto the
// HTTP error taxonomy: not-found, conflict, forbidden, validation.
var (
	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceInactive  = errors.New("service is inactive")
	ErrSlotNotFound     = errors.New("availability slot not found")
	ErrSlotMismatch     = errors.New("availability slot does not belong to service")
	ErrCapacityExceeded = errors.New("no available capacity")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room unavailable for requested dates")
	ErrExtraNotFound    = errors.New("extra not found")
	ErrExtraOverMax     = errors.New("extra quantity exceeds maximum")

	// Slot administration errors
	ErrSlotOverlap = errors.New("slot overlaps an existing slot")

	// Authorization errors
	ErrForbidden = errors.New("requester not allowed for this establishment")

	// Transition errors
	ErrHotelOnly = errors.New("operation only valid for hotel bookings")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
