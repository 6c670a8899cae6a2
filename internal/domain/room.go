package domain

import (
	"errors"
	"time"
)

type RoomCategory string

const (
	RoomSingle RoomCategory = "Single"
	RoomDouble RoomCategory = "Double"
	RoomSuite  RoomCategory = "Suite"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
)

type Room struct {
	ID            int64        `json:"id"`
	Number        string       `json:"number" gorm:"uniqueIndex;not null" validate:"required"`
	Category      RoomCategory `json:"category" gorm:"not null" validate:"required"`
	PricePerNight float64      `json:"price_per_night" gorm:"not null" validate:"gte=0"`
	Status        RoomStatus   `json:"status" gorm:"not null;default:Available"`
	CreatedAt     time.Time    `json:"created_at"`
}

var ErrUnknownRoomCategory = errors.New("unknown room category")

func ValidRoomCategories() []RoomCategory {
	return []RoomCategory{RoomSingle, RoomDouble, RoomSuite}
}

func ParseRoomCategory(s string) (RoomCategory, error) {
	for _, c := range ValidRoomCategories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", ErrUnknownRoomCategory
}
