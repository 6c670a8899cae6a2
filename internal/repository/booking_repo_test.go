package repository

import (
	"context"
	"testing"
	"time"

	"hotelmanager/internal/database"
	"hotelmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Room{},
		&domain.Guest{},
		&domain.Booking{},
	))

	return db
}

func seedRoomAndGuest(t *testing.T, db *gorm.DB, status domain.RoomStatus) (*domain.Room, *domain.Guest) {
	t.Helper()
	ctx := context.Background()

	room := &domain.Room{Number: "101", Category: domain.RoomSingle, PricePerNight: 1500, Status: status}
	require.NoError(t, NewRoomRepository(db).Create(ctx, room))

	guest := &domain.Guest{Name: "Aarav Sharma", Phone: "9999999999"}
	require.NoError(t, NewGuestRepository(db).Create(ctx, guest))

	return room, guest
}

func newBooking(roomID, guestID int64) *domain.Booking {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		RoomID:      roomID,
		GuestID:     guestID,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 2),
		Status:      domain.BookingBooked,
		TotalAmount: 3000,
	}
}

func roomStatus(t *testing.T, db *gorm.DB, id int64) domain.RoomStatus {
	t.Helper()
	room, err := NewRoomRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	return room.Status
}

func TestBookingRepository_Create_OccupiesRoom(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomAvailable)
	repo := NewBookingRepository(db)

	b := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(context.Background(), b))

	assert.NotZero(t, b.ID)
	assert.Equal(t, domain.RoomOccupied, roomStatus(t, db, room.ID))
}

func TestBookingRepository_Create_MaintenanceRoomKeepsStatus(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomMaintenance)
	repo := NewBookingRepository(db)

	require.NoError(t, repo.Create(context.Background(), newBooking(room.ID, guest.ID)))

	assert.Equal(t, domain.RoomMaintenance, roomStatus(t, db, room.ID))
}

func TestBookingRepository_ApplyTransition_CheckOutFreesRoom(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomAvailable)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, b))

	checked, err := repo.ApplyTransition(ctx, b.ID, domain.ActionCheckIn)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, checked.Status)
	assert.Equal(t, domain.RoomOccupied, roomStatus(t, db, room.ID))

	done, err := repo.ApplyTransition(ctx, b.ID, domain.ActionCheckOut)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, done.Status)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, db, room.ID))
}

func TestBookingRepository_ApplyTransition_RecomputesFromRemainingBookings(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomAvailable)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, first))
	second := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, second))

	// One booking leaves, the other still holds the room.
	_, err := repo.ApplyTransition(ctx, first.ID, domain.ActionCheckOut)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, roomStatus(t, db, room.ID))

	_, err = repo.ApplyTransition(ctx, second.ID, domain.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, db, room.ID))
}

func TestBookingRepository_ApplyTransition_TerminalRejected(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomAvailable)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.ApplyTransition(ctx, b.ID, domain.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, db, room.ID))

	_, err = repo.ApplyTransition(ctx, b.ID, domain.ActionCheckIn)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Nothing moved.
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, db, room.ID))
}

func TestBookingRepository_ApplyTransition_MaintenanceRoomUntouched(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomMaintenance)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.ApplyTransition(ctx, b.ID, domain.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, roomStatus(t, db, room.ID))
}

func TestBookingRepository_ApplyTransition_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)

	_, err := repo.ApplyTransition(context.Background(), 12345, domain.ActionCheckIn)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_ListWithDetails(t *testing.T) {
	db := setupDB(t)
	room, guest := seedRoomAndGuest(t, db, domain.RoomAvailable)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, first))
	second := newBooking(room.ID, guest.ID)
	require.NoError(t, repo.Create(ctx, second))

	rows, err := repo.ListWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Most recent first.
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
	assert.Equal(t, "101", rows[0].RoomNumber)
	assert.Equal(t, "Aarav Sharma", rows[0].GuestName)
	assert.Equal(t, 3000.0, rows[0].TotalAmount)
}

func TestRoomRepository_DuplicateNumber(t *testing.T) {
	db := setupDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Room{Number: "101", Category: domain.RoomSingle, PricePerNight: 1500, Status: domain.RoomAvailable}))

	err := repo.Create(ctx, &domain.Room{Number: "101", Category: domain.RoomDouble, PricePerNight: 2500, Status: domain.RoomAvailable})
	assert.Error(t, err)
}

func TestListOrdering(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	roomRepo := NewRoomRepository(db)
	guestRepo := NewGuestRepository(db)

	for _, n := range []string{"101", "102", "201"} {
		require.NoError(t, roomRepo.Create(ctx, &domain.Room{Number: n, Category: domain.RoomSingle, PricePerNight: 1000, Status: domain.RoomAvailable}))
	}
	for _, n := range []string{"A", "B"} {
		require.NoError(t, guestRepo.Create(ctx, &domain.Guest{Name: n}))
	}

	rooms, err := roomRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "201", rooms[0].Number)
	assert.Equal(t, "101", rooms[2].Number)

	guests, err := guestRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, "B", guests[0].Name)
}
