package catalog

import "errors"

var (
	ErrRoomNumberRequired = errors.New("room number is required")
	ErrInvalidCategory    = errors.New("invalid room category")
	ErrNegativePrice      = errors.New("price per night must not be negative")
	ErrRoomNumberTaken    = errors.New("room number already exists")
	ErrGuestNameRequired  = errors.New("guest name is required")
	ErrRoomNotFound       = errors.New("room not found")
	ErrGuestNotFound      = errors.New("guest not found")
)
