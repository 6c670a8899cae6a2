package repository

import (
	"context"
	"errors"
	"time"

	"hotelmanager/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidTransition is returned by ApplyTransition when the requested
// action is not allowed from the booking's current status.
var ErrInvalidTransition = errors.New("booking status transition not allowed")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	RoomID      int64     `gorm:"column:room_id"`
	GuestID     int64     `gorm:"column:guest_id"`
	CheckIn     time.Time `gorm:"column:check_in"`
	CheckOut    time.Time `gorm:"column:check_out"`
	Status      string    `gorm:"column:status"`
	TotalAmount float64   `gorm:"column:total_amount"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// BookingDetails is a booking row joined with its room number and guest
// name, for listing.
type BookingDetails struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	GuestID     int64     `json:"guest_id"`
	GuestName   string    `json:"guest_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		RoomID:      m.RoomID,
		GuestID:     m.GuestID,
		CheckIn:     m.CheckIn,
		CheckOut:    m.CheckOut,
		Status:      domain.BookingStatus(m.Status),
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		RoomID:      b.RoomID,
		GuestID:     b.GuestID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}
}

// Create inserts the booking and marks its room Occupied in a single
// transaction. A room in Maintenance keeps its status.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&roomModel{}).
			Where("id = ? AND status <> ?", m.RoomID, string(domain.RoomMaintenance)).
			Update("status", string(domain.RoomOccupied)).Error
	})
	if err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ApplyTransition moves the booking along the lifecycle state machine and
// recomputes the room's status, both in one transaction. The booking row
// is locked for the duration so concurrent transitions on the same
// booking serialize (the sqlite driver drops the lock clause; sqlite
// serializes writers itself).
//
// After the booking changes, the room becomes Occupied if any Booked or
// Checked-In booking still references it, otherwise Available. A room in
// Maintenance is left untouched.
func (r *BookingRepository) ApplyTransition(ctx context.Context, bookingID int64, action domain.BookingAction) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, bookingID).Error; err != nil {
			return err
		}

		next, ok := domain.NextStatus(domain.BookingStatus(m.Status), action)
		if !ok {
			return ErrInvalidTransition
		}

		if err := tx.Model(&bookingModel{}).
			Where("id = ?", m.ID).
			Update("status", string(next)).Error; err != nil {
			return err
		}
		m.Status = string(next)

		var active int64
		if err := tx.Model(&bookingModel{}).
			Where("room_id = ? AND status IN ?", m.RoomID,
				[]string{string(domain.BookingBooked), string(domain.BookingCheckedIn)}).
			Count(&active).Error; err != nil {
			return err
		}

		roomStatus := domain.RoomAvailable
		if active > 0 {
			roomStatus = domain.RoomOccupied
		}
		return tx.Model(&roomModel{}).
			Where("id = ? AND status <> ?", m.RoomID, string(domain.RoomMaintenance)).
			Update("status", string(roomStatus)).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListWithDetails(ctx context.Context) ([]BookingDetails, error) {
	var rows []BookingDetails
	q := `
SELECT b.id, b.room_id, r.number AS room_number,
       b.guest_id, g.name AS guest_name,
       b.check_in, b.check_out, b.status, b.total_amount, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN guests g ON g.id = b.guest_id
ORDER BY b.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("created_at >= ?", since).
		Count(&cnt)
	return cnt, tx.Error
}
