package booking

import (
	"context"

	"hotelmanager/internal/domain"
	"hotelmanager/internal/repository"
)

// BookingRepository is the transactional booking store. Create and
// ApplyTransition commit the booking row and the room row together.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ApplyTransition(ctx context.Context, bookingID int64, action domain.BookingAction) (*domain.Booking, error)
	ListWithDetails(ctx context.Context) ([]repository.BookingDetails, error)
}

// RoomRepository resolves rooms and their nightly price.
type RoomRepository interface {
	GetPriceByID(ctx context.Context, roomID int64) (float64, error)
}

// GuestRepository resolves guests.
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// EventSink receives booking lifecycle events. A nil sink is permitted.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingStatusChanged(b *domain.Booking, action domain.BookingAction)
}
