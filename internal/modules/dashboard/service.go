package dashboard

import (
	"context"
	"time"

	"hotelmanager/internal/domain"
	"hotelmanager/internal/repository"
)

type Stats struct {
	RoomsTotal     int64 `json:"rooms_total"`
	RoomsAvailable int64 `json:"rooms_available"`
	GuestsTotal    int64 `json:"guests_total"`
	BookingsToday  int64 `json:"bookings_today"`
}

type Service struct {
	rooms    *repository.RoomRepository
	guests   *repository.GuestRepository
	bookings *repository.BookingRepository
}

func NewService(rooms *repository.RoomRepository, guests *repository.GuestRepository, bookings *repository.BookingRepository) *Service {
	return &Service{rooms: rooms, guests: guests, bookings: bookings}
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.RoomsTotal, err = s.rooms.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RoomsAvailable, err = s.rooms.CountByStatus(ctx, domain.RoomAvailable); err != nil {
		return nil, err
	}
	if stats.GuestsTotal, err = s.guests.Count(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.BookingsToday, err = s.bookings.CountCreatedSince(ctx, midnight); err != nil {
		return nil, err
	}

	return stats, nil
}
