package events

import (
	"time"

	"hotelmanager/internal/domain"
)

// Event is the wire shape pushed to front-desk clients.
type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	RoomID    int64     `json:"room_id"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

// Notifier adapts the hub to the booking engine's event sink.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) BookingCreated(b *domain.Booking) {
	n.hub.Broadcast(Event{
		Type:      "booking_created",
		BookingID: b.ID,
		RoomID:    b.RoomID,
		Status:    string(b.Status),
		At:        time.Now(),
	})
}

func (n *Notifier) BookingStatusChanged(b *domain.Booking, action domain.BookingAction) {
	n.hub.Broadcast(Event{
		Type:      "booking_" + string(action),
		BookingID: b.ID,
		RoomID:    b.RoomID,
		Status:    string(b.Status),
		At:        time.Now(),
	})
}
