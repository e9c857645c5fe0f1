//go:build unit

package booking_test

import (
	"testing"

	"bookwise/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsTerminal(t *testing.T) {
	terminal := []booking.Status{
		booking.StatusCancelled,
		booking.StatusCheckedOut,
		booking.StatusNoShow,
	}
	active := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCheckedIn,
	}

	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "expected %s to be terminal", s)
	}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), "expected %s to be non-terminal", s)
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCheckedIn,
		booking.StatusCheckedOut,
		booking.StatusNoShow,
	} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, booking.Status("UNKNOWN").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func TestTransitionGuards(t *testing.T) {
	type guardCase struct {
		from  booking.Status
		errIs error
	}

	run := func(t *testing.T, guard func(booking.Status) error, cases []guardCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(string(tc.from), func(t *testing.T) {
				err := guard(tc.from)
				if tc.errIs == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	}

	t.Run("confirm", func(t *testing.T) {
		run(t, booking.CanConfirm, []guardCase{
			{from: booking.StatusPending},
			{from: booking.StatusConfirmed, errIs: booking.ErrAlreadyConfirmed},
			{from: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
			{from: booking.StatusCheckedIn, errIs: booking.ErrAlreadyCheckedIn},
			{from: booking.StatusCheckedOut, errIs: booking.ErrCheckedOut},
			{from: booking.StatusNoShow, errIs: booking.ErrAlreadyNoShow},
			{from: booking.Status("UNKNOWN"), errIs: booking.ErrInvalidStatus},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		run(t, booking.CanCancel, []guardCase{
			{from: booking.StatusPending},
			{from: booking.StatusConfirmed},
			{from: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
			{from: booking.StatusCheckedIn, errIs: booking.ErrCheckedInCancel},
			{from: booking.StatusCheckedOut, errIs: booking.ErrCheckedOut},
			{from: booking.StatusNoShow, errIs: booking.ErrAlreadyNoShow},
			{from: booking.Status("UNKNOWN"), errIs: booking.ErrInvalidStatus},
		})
	})

	t.Run("check-in", func(t *testing.T) {
		run(t, booking.CanCheckIn, []guardCase{
			{from: booking.StatusConfirmed},
			{from: booking.StatusPending, errIs: booking.ErrNotConfirmed},
			{from: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
			{from: booking.StatusCheckedIn, errIs: booking.ErrAlreadyCheckedIn},
			{from: booking.StatusCheckedOut, errIs: booking.ErrCheckedOut},
			{from: booking.StatusNoShow, errIs: booking.ErrNoShowBooking},
			{from: booking.Status("UNKNOWN"), errIs: booking.ErrInvalidStatus},
		})
	})

	t.Run("check-out", func(t *testing.T) {
		run(t, booking.CanCheckOut, []guardCase{
			{from: booking.StatusCheckedIn},
			{from: booking.StatusPending, errIs: booking.ErrNotCheckedIn},
			{from: booking.StatusConfirmed, errIs: booking.ErrNotCheckedIn},
			{from: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
			{from: booking.StatusCheckedOut, errIs: booking.ErrCheckedOut},
			{from: booking.StatusNoShow, errIs: booking.ErrAlreadyNoShow},
			{from: booking.Status("UNKNOWN"), errIs: booking.ErrInvalidStatus},
		})
	})

	t.Run("no-show", func(t *testing.T) {
		run(t, booking.CanMarkNoShow, []guardCase{
			{from: booking.StatusPending},
			{from: booking.StatusConfirmed},
			{from: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
			{from: booking.StatusCheckedIn, errIs: booking.ErrCheckedInNoShow},
			{from: booking.StatusCheckedOut, errIs: booking.ErrCheckedOut},
			{from: booking.StatusNoShow, errIs: booking.ErrAlreadyNoShow},
			{from: booking.Status("UNKNOWN"), errIs: booking.ErrInvalidStatus},
		})
	})
}

func TestTerminalStatusesAcceptNoTransitions(t *testing.T) {
	guards := []func(booking.Status) error{
		booking.CanConfirm,
		booking.CanCancel,
		booking.CanCheckIn,
		booking.CanCheckOut,
		booking.CanMarkNoShow,
	}

	for _, s := range []booking.Status{
		booking.StatusCancelled,
		booking.StatusCheckedOut,
		booking.StatusNoShow,
	} {
		for _, guard := range guards {
			assert.Error(t, guard(s), "terminal status %s must reject all transitions", s)
		}
	}
}
