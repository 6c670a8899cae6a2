package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"hotelmanager/internal/domain"
	"hotelmanager/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	guests   GuestRepository
	events   EventSink
}

func NewService(bookings BookingRepository, rooms RoomRepository, guests GuestRepository, events EventSink) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		guests:   guests,
		events:   events,
	}
}

// CreateBooking validates the request, prices the stay and inserts the
// booking together with the room's Occupied status as one transaction.
//
// Known limitation: overlapping bookings on the same room are not
// rejected; a second booking simply re-occupies the room.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	pricePerNight, err := s.rooms.GetPriceByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if _, err := s.guests.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		nights = 0
	}
	total := math.Round(pricePerNight*float64(nights)*100) / 100

	b := &domain.Booking{
		RoomID:      req.RoomID,
		GuestID:     req.GuestID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      domain.BookingBooked,
		TotalAmount: total,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(b)
	}

	return b, nil
}

// Transition applies a check-in, check-out or cancel action. The booking
// status and the room's recomputed occupancy commit together; the store
// rejects moves out of a terminal status.
func (s *Service) Transition(ctx context.Context, bookingID int64, action domain.BookingAction) (*domain.Booking, error) {
	b, err := s.bookings.ApplyTransition(ctx, bookingID, action)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, repository.ErrInvalidTransition):
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	if s.events != nil {
		s.events.BookingStatusChanged(b, action)
	}

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]BookingDetails, error) {
	rows, err := s.bookings.ListWithDetails(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:          r.ID,
			RoomID:      r.RoomID,
			RoomNumber:  r.RoomNumber,
			GuestID:     r.GuestID,
			GuestName:   r.GuestName,
			CheckIn:     r.CheckIn.Format(dateLayout),
			CheckOut:    r.CheckOut.Format(dateLayout),
			Status:      r.Status,
			TotalAmount: r.TotalAmount,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
