package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventzen/internal/config"
	"eventzen/internal/database"
	"eventzen/internal/domain"
	"eventzen/internal/middleware"
	"eventzen/internal/modules/attendee"
	"eventzen/internal/modules/auth"
	"eventzen/internal/modules/booking"
	"eventzen/internal/modules/catalog"
	"eventzen/internal/modules/notification"
	"eventzen/internal/modules/payment"
	"eventzen/internal/modules/vendor"
	jwtsvc "eventzen/internal/pkg/jwt"
	"eventzen/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Venue{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.Attendee{},
		&domain.Vendor{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	defer hub.Close()

	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService, hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(eventRepo, venueRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, eventRepo, venueRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingRepo, gateway, notifService, cfg.Currency, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	attendeeHandler := attendee.NewHandler(attendeeRepo)
	vendorHandler := vendor.NewHandler(vendorRepo)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/notifications", notifHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		// protected (booking, payment, notification endpoints)
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			attendeeHandler.RegisterRoutes(protected)
			vendorHandler.RegisterRoutes(protected)
		}

		// catalog mutation is admin-only
		admin := api.Group("/")
		admin.Use(middleware.Auth(j), middleware.RequireRole(string(domain.RoleAdmin)))
		{
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("level=info msg=starting server addr=%s env=%s", cfg.Addr, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
