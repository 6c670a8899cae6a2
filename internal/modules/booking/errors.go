package booking

import "errors"

var (
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrRoomNotFound      = errors.New("room not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
