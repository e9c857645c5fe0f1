package booking

import "errors"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCancelled  Status = "CANCELLED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusNoShow     Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusCheckedOut, StatusNoShow:
		return true
	default:
		return false
	}
}

// Terminal statuses accept no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCheckedOut, StatusNoShow:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCheckedIn = errors.New("booking is already checked in")
	ErrAlreadyNoShow    = errors.New("booking is already marked no-show")
	ErrCheckedOut       = errors.New("booking is already checked out")
	ErrNoShowBooking    = errors.New("cannot check in a no-show booking")
	ErrNotConfirmed     = errors.New("booking is not confirmed")
	ErrNotCheckedIn     = errors.New("booking is not checked in")
	ErrCheckedInCancel  = errors.New("cannot cancel a checked-in booking")
	ErrCheckedInNoShow  = errors.New("cannot mark a checked-in booking as no-show")
)

// Transition guards. Each is a pure predicate over the current status and
// returns nil when the transition is legal, or a specific error otherwise.

func CanConfirm(s Status) error {
	switch s {
	case StatusPending:
		return nil
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedIn:
		return ErrAlreadyCheckedIn
	case StatusCheckedOut:
		return ErrCheckedOut
	case StatusNoShow:
		return ErrAlreadyNoShow
	default:
		return ErrInvalidStatus
	}
}

func CanCancel(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed:
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedIn:
		return ErrCheckedInCancel
	case StatusCheckedOut:
		return ErrCheckedOut
	case StatusNoShow:
		return ErrAlreadyNoShow
	default:
		return ErrInvalidStatus
	}
}

func CanCheckIn(s Status) error {
	switch s {
	case StatusConfirmed:
		return nil
	case StatusPending:
		return ErrNotConfirmed
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedIn:
		return ErrAlreadyCheckedIn
	case StatusCheckedOut:
		return ErrCheckedOut
	case StatusNoShow:
		return ErrNoShowBooking
	default:
		return ErrInvalidStatus
	}
}

func CanCheckOut(s Status) error {
	switch s {
	case StatusCheckedIn:
		return nil
	case StatusPending, StatusConfirmed:
		return ErrNotCheckedIn
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedOut:
		return ErrCheckedOut
	case StatusNoShow:
		return ErrAlreadyNoShow
	default:
		return ErrInvalidStatus
	}
}

func CanMarkNoShow(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed:
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedIn:
		return ErrCheckedInNoShow
	case StatusCheckedOut:
		return ErrCheckedOut
	case StatusNoShow:
		return ErrAlreadyNoShow
	default:
		return ErrInvalidStatus
	}
}
