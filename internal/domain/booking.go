package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingBooked     BookingStatus = "Booked"
	BookingCheckedIn  BookingStatus = "Checked-In"
	BookingCheckedOut BookingStatus = "Checked-Out"
	BookingCancelled  BookingStatus = "Cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

type BookingAction string

const (
	ActionCheckIn  BookingAction = "checkin"
	ActionCheckOut BookingAction = "checkout"
	ActionCancel   BookingAction = "cancel"
)

var ErrUnknownBookingAction = errors.New("unknown booking action")

func ParseBookingAction(s string) (BookingAction, error) {
	switch BookingAction(s) {
	case ActionCheckIn, ActionCheckOut, ActionCancel:
		return BookingAction(s), nil
	}
	return "", ErrUnknownBookingAction
}

type Booking struct {
	ID          int64         `json:"id"`
	RoomID      int64         `json:"room_id" gorm:"not null" validate:"required"`
	GuestID     int64         `json:"guest_id" gorm:"not null" validate:"required"`
	CheckIn     time.Time     `json:"check_in" gorm:"type:date;not null" validate:"required"`
	CheckOut    time.Time     `json:"check_out" gorm:"type:date;not null" validate:"required"`
	Status      BookingStatus `json:"status" gorm:"not null;default:Booked"`
	TotalAmount float64       `json:"total_amount" gorm:"not null"`
	CreatedAt   time.Time     `json:"created_at"`

	Room  *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
}

// NextStatus is the booking state machine. Check-in is only reachable
// from Booked; check-out and cancel work from either active status.
// Terminal statuses accept nothing.
func NextStatus(from BookingStatus, action BookingAction) (BookingStatus, bool) {
	if from.Terminal() {
		return "", false
	}
	switch action {
	case ActionCheckIn:
		if from == BookingBooked {
			return BookingCheckedIn, true
		}
	case ActionCheckOut:
		return BookingCheckedOut, true
	case ActionCancel:
		return BookingCancelled, true
	}
	return "", false
}
