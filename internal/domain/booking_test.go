package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus_ActiveMoves(t *testing.T) {
	cases := []struct {
		from   BookingStatus
		action BookingAction
		want   BookingStatus
	}{
		{BookingBooked, ActionCheckIn, BookingCheckedIn},
		{BookingBooked, ActionCheckOut, BookingCheckedOut},
		{BookingBooked, ActionCancel, BookingCancelled},
		{BookingCheckedIn, ActionCheckOut, BookingCheckedOut},
		{BookingCheckedIn, ActionCancel, BookingCancelled},
	}

	for _, tc := range cases {
		got, ok := NextStatus(tc.from, tc.action)
		assert.True(t, ok, "%s + %s should be allowed", tc.from, tc.action)
		assert.Equal(t, tc.want, got)
	}
}

func TestNextStatus_CheckInOnlyFromBooked(t *testing.T) {
	_, ok := NextStatus(BookingCheckedIn, ActionCheckIn)
	assert.False(t, ok)
}

func TestNextStatus_TerminalStatusesAreImmutable(t *testing.T) {
	for _, from := range []BookingStatus{BookingCheckedOut, BookingCancelled} {
		for _, action := range []BookingAction{ActionCheckIn, ActionCheckOut, ActionCancel} {
			_, ok := NextStatus(from, action)
			assert.False(t, ok, "%s + %s must be rejected", from, action)
		}
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, BookingBooked.Terminal())
	assert.False(t, BookingCheckedIn.Terminal())
	assert.True(t, BookingCheckedOut.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestParseBookingAction(t *testing.T) {
	for _, s := range []string{"checkin", "checkout", "cancel"} {
		a, err := ParseBookingAction(s)
		assert.NoError(t, err)
		assert.Equal(t, BookingAction(s), a)
	}

	_, err := ParseBookingAction("checkedin")
	assert.ErrorIs(t, err, ErrUnknownBookingAction)
}

func TestParseRoomCategory(t *testing.T) {
	c, err := ParseRoomCategory("Suite")
	assert.NoError(t, err)
	assert.Equal(t, RoomSuite, c)

	_, err = ParseRoomCategory("penthouse")
	assert.ErrorIs(t, err, ErrUnknownRoomCategory)
}
