package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelmanager/internal/config"
	"hotelmanager/internal/database"
	"hotelmanager/internal/domain"
	"hotelmanager/internal/middleware"
	"hotelmanager/internal/modules/booking"
	"hotelmanager/internal/modules/catalog"
	"hotelmanager/internal/modules/dashboard"
	"hotelmanager/internal/modules/events"
	"hotelmanager/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Room{},
		&domain.Guest{},
		&domain.Booking{},
	); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	hub := events.NewHub()
	defer hub.Close()

	catalogService := catalog.NewService(roomRepo, guestRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, guestRepo, events.NewNotifier(hub))
	bookingHandler := booking.NewHandler(bookingService)

	dashboardService := dashboard.NewService(roomRepo, guestRepo, bookingRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
