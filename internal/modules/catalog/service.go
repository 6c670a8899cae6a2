package catalog

import (
	"context"
	"errors"
	"strings"

	"hotelmanager/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RoomRepository is the room store as the registry needs it.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

// GuestRepository is the guest store as the registry needs it.
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	List(ctx context.Context) ([]domain.Guest, error)
}

type Service struct {
	rooms  RoomRepository
	guests GuestRepository
}

func NewService(rooms RoomRepository, guests GuestRepository) *Service {
	return &Service{rooms: rooms, guests: guests}
}

/* ---------- ROOMS ---------- */

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrRoomNumberRequired
	}

	category, err := domain.ParseRoomCategory(req.Category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	room := &domain.Room{
		Number:        number,
		Category:      category,
		PricePerNight: req.Price,
		Status:        domain.RoomAvailable,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}

	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

/* ---------- GUESTS ---------- */

func (s *Service) CreateGuest(ctx context.Context, req CreateGuestRequest) (*domain.Guest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrGuestNameRequired
	}

	guest := &domain.Guest{
		Name:  name,
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.TrimSpace(req.Email),
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (s *Service) GetGuest(ctx context.Context, id int64) (*domain.Guest, error) {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *Service) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	return s.guests.List(ctx)
}

// isUniqueViolation covers both backends: pgconn surfaces code 23505 on
// PostgreSQL, gorm translates duplicates to ErrDuplicatedKey, and the
// cgo-free sqlite driver only reports the constraint in its message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
