package repository

import (
	"context"
	"time"

	"hotelmanager/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Phone     *string   `gorm:"column:phone"`
	Email     *string   `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	var phone, email string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Email != nil {
		email = *m.Email
	}
	return &domain.Guest{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     phone,
		Email:     email,
		CreatedAt: m.CreatedAt,
	}
}

func toGuestModel(g *domain.Guest) guestModel {
	m := guestModel{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
	if g.Phone != "" {
		v := g.Phone
		m.Phone = &v
	}
	if g.Email != "" {
		v := g.Email
		m.Email = &v
	}
	return m
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := toGuestModel(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) List(ctx context.Context) ([]domain.Guest, error) {
	var models []guestModel
	tx := r.db.WithContext(ctx).Order("id DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guest, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}

func (r *GuestRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&guestModel{}).Count(&cnt)
	return cnt, tx.Error
}
