package booking

import (
	"time"

	"hotelmanager/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID   int64  `json:"room_id" binding:"required"`
	GuestID  int64  `json:"guest_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// BookingResponse carries a single booking with its dates in the
// calendar-date wire format.
type BookingResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id"`
	GuestID     int64     `json:"guest_id"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		GuestID:     b.GuestID,
		CheckIn:     b.CheckIn.Format(dateLayout),
		CheckOut:    b.CheckOut.Format(dateLayout),
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}
}

type BookingDetails struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	GuestID     int64     `json:"guest_id"`
	GuestName   string    `json:"guest_name"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
