package main

import (
	"log"
	"time"

	"hotelmanager/internal/config"
	"hotelmanager/internal/database"
	"hotelmanager/internal/domain"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Room{},
		&domain.Guest{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM guests")
	db.Exec("DELETE FROM rooms")

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Number: "101", Category: domain.RoomSingle, PricePerNight: 1500, Status: domain.RoomAvailable},
		{Number: "102", Category: domain.RoomDouble, PricePerNight: 2500, Status: domain.RoomAvailable},
		{Number: "201", Category: domain.RoomSuite, PricePerNight: 5000, Status: domain.RoomMaintenance},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	log.Println("Creating guests...")
	guests := []domain.Guest{
		{Name: "Aarav Sharma", Phone: "9999999999", Email: "aarav@example.com"},
		{Name: "Isha Patel", Phone: "8888888888", Email: "isha@example.com"},
	}
	for i := range guests {
		db.Create(&guests[i])
	}

	log.Println("Creating a sample booking...")
	y, m, d := time.Now().AddDate(0, 0, 1).Date()
	checkIn := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	booking := domain.Booking{
		RoomID:      rooms[0].ID,
		GuestID:     guests[0].ID,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 2),
		Status:      domain.BookingBooked,
		TotalAmount: rooms[0].PricePerNight * 2,
	}
	db.Create(&booking)
	db.Model(&domain.Room{}).Where("id = ?", rooms[0].ID).Update("status", domain.RoomOccupied)

	log.Println("Seed complete.")
}
