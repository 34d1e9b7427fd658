package handlers

import (
	"errors"
	"net/http"

	"github.com/canaville/resort-booking-backend/internal/catalog"
	"github.com/canaville/resort-booking-backend/internal/database"
	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/canaville/resort-booking-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService      *services.BookingService
	availabilityService *services.AvailabilityService
	pricingService      *services.PricingService
	reservationRepo     *database.ReservationRepository
	catalog             *catalog.Catalog
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(
	bookingService *services.BookingService,
	availabilityService *services.AvailabilityService,
	pricingService *services.PricingService,
	reservationRepo *database.ReservationRepository,
	cat *catalog.Catalog,
) *BookingHandler {
	return &BookingHandler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		pricingService:      pricingService,
		reservationRepo:     reservationRepo,
		catalog:             cat,
	}
}

// CreateBooking submits a new reservation
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}

	reservation, err := h.bookingService.Submit(&req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking confirmed",
		"reservation": reservation,
	})
}

// Quote recomputes the total cost for a draft booking without persisting it
// POST /api/v1/bookings/quote
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}

	breakdown, err := h.pricingService.TotalCost(&req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GroundAvailability reports which grounds are free on a date
// GET /api/v1/availability/grounds?date=YYYY-MM-DD&ground=Name
func (h *BookingHandler) GroundAvailability(c *gin.Context) {
	result, err := h.availabilityService.CheckGround(c.Query("date"), c.Query("ground"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AccommodationAvailability reports which accommodation types are free for a
// date range
// GET /api/v1/availability/accommodation?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD
func (h *BookingHandler) AccommodationAvailability(c *gin.Context) {
	result, err := h.availabilityService.CheckAccommodationForAll(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": result})
}

// GetCatalog returns the full pricing catalog
// GET /api/v1/catalog
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// ListBookings returns all reservations, newest first (admin)
// GET /api/v1/admin/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	reservations, err := h.reservationRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "list_failed",
			"message": "Failed to load bookings",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(reservations),
		"bookings": reservations,
	})
}

// GetBooking returns a single reservation by ID (admin)
// GET /api/v1/admin/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	reservation, err := h.reservationRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "get_failed",
			"message": "Failed to load booking",
		})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// respondBookingError maps service errors onto HTTP responses
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var (
		validationErr    *models.ValidationError
		groundErr        *services.GroundConflictError
		accommodationErr *database.AccommodationConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "Please correct the highlighted fields",
			"fields":  validationErr.Fields,
		})
	case errors.As(err, &groundErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "ground_unavailable",
			"message": groundErr.Error(),
		})
	case errors.As(err, &accommodationErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "accommodation_unavailable",
			"message": accommodationErr.Error(),
		})
	case errors.Is(err, catalog.ErrUnknownKey):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unknown_catalog_item",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDatesRequired),
		errors.Is(err, services.ErrCheckOutNotAfterCheckIn),
		errors.Is(err, services.ErrCheckInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_dates",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "booking_failed",
			"message": services.ErrSubmissionFailed.Error(),
		})
	}
}
