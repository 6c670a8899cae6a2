package repository

import (
	"context"
	"time"

	"hotelmanager/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Number        string    `gorm:"column:number"`
	Category      string    `gorm:"column:category"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		Number:        m.Number,
		Category:      domain.RoomCategory(m.Category),
		PricePerNight: m.PricePerNight,
		Status:        domain.RoomStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:            r.ID,
		Number:        r.Number,
		Category:      string(r.Category),
		PricePerNight: r.PricePerNight,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// List returns all rooms, most recently created first. Each call runs a
// fresh query, so callers always see the current catalog.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Order("id DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetPriceByID(ctx context.Context, roomID int64) (float64, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Select("id", "price_per_night").First(&m, roomID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return m.PricePerNight, nil
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *RoomRepository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("status = ?", string(status)).
		Count(&cnt)
	return cnt, tx.Error
}
