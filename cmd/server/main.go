package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/canaville/resort-booking-backend/internal/catalog"
	"github.com/canaville/resort-booking-backend/internal/config"
	"github.com/canaville/resort-booking-backend/internal/database"
	"github.com/canaville/resort-booking-backend/internal/handlers"
	"github.com/canaville/resort-booking-backend/internal/middleware"
	"github.com/canaville/resort-booking-backend/internal/services"
	"github.com/canaville/resort-booking-backend/pkg/jwt"
	"github.com/canaville/resort-booking-backend/pkg/mpesa"
	"github.com/canaville/resort-booking-backend/pkg/validator"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	level, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Build the pricing catalog
	cat := catalog.Default(cfg.Booking.LenientPricing)

	// Initialize repositories
	reservationRepo := database.NewReservationRepository(db)
	transactionRepo := database.NewTransactionRepository(db)

	// Initialize shared helpers
	jwtService := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
	phoneValidator := validator.NewPhoneValidator()
	darajaClient := mpesa.NewClient(mpesa.Config{
		BaseURL:        cfg.MPesa.BaseURL,
		ConsumerKey:    cfg.MPesa.ConsumerKey,
		ConsumerSecret: cfg.MPesa.ConsumerSecret,
		ShortCode:      cfg.MPesa.ShortCode,
		Passkey:        cfg.MPesa.Passkey,
		CallbackURL:    cfg.MPesa.CallbackURL,
		AccountRef:     cfg.MPesa.AccountRef,
		Timeout:        cfg.MPesa.Timeout,
	})

	// Initialize services
	availabilityService := services.NewAvailabilityService(reservationRepo, cat, logger)
	pricingService := services.NewPricingService(cat)
	bookingService := services.NewBookingService(reservationRepo, availabilityService, pricingService, cat, logger)
	paymentService := services.NewPaymentService(darajaClient, transactionRepo, phoneValidator, logger)
	adminAuthService := services.NewAdminAuthService(cfg.Admin, jwtService, logger)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(bookingService, availabilityService, pricingService, reservationRepo, cat)
	paymentHandler := handlers.NewPaymentHandler(paymentService, transactionRepo)
	authHandler := handlers.NewAuthHandler(adminAuthService)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// Payment gateway endpoints. The paths are fixed: the gateway is
	// registered with the callback URL and the frontend posts to /token.
	router.POST("/token", paymentHandler.InitiatePayment)
	router.POST("/token/callback", paymentHandler.Callback)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", bookingHandler.GetCatalog)
		v1.POST("/bookings", bookingHandler.CreateBooking)
		v1.POST("/bookings/quote", bookingHandler.Quote)

		availability := v1.Group("/availability")
		{
			availability.GET("/grounds", bookingHandler.GroundAvailability)
			availability.GET("/accommodation", bookingHandler.AccommodationAvailability)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", authHandler.AdminLogin)

			protected := admin.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService))
			{
				protected.GET("/bookings", bookingHandler.ListBookings)
				protected.GET("/bookings/:id", bookingHandler.GetBooking)
				protected.GET("/transactions", paymentHandler.ListTransactions)
			}
		}
	}

	// HTTP server with timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// healthCheckHandler reports service and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
