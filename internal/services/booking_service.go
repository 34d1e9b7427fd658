package services

import (
	"errors"
	"fmt"

	"github.com/canaville/resort-booking-backend/internal/catalog"
	"github.com/canaville/resort-booking-backend/internal/database"
	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrSubmissionFailed is the generic storage failure surfaced to users;
// the underlying cause is only logged.
var ErrSubmissionFailed = errors.New("failed to save booking, please try again")

// GroundConflictError indicates the selected ground is already reserved on
// the requested date.
type GroundConflictError struct {
	Ground string
	Date   string
}

// Error implements the error interface
func (e *GroundConflictError) Error() string {
	return fmt.Sprintf("%s is already reserved on %s", e.Ground, e.Date)
}

// reservationWriter is the slice of the reservation repository the booking
// service needs for submission.
type reservationWriter interface {
	CreateConfirmed(reservation *models.Reservation) error
}

// BookingService orchestrates reservation submission: validation,
// availability re-checks, final pricing, and the conditional write.
type BookingService struct {
	repo         reservationWriter
	availability *AvailabilityService
	pricing      *PricingService
	catalog      *catalog.Catalog
	logger       *logrus.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	repo reservationWriter,
	availability *AvailabilityService,
	pricing *PricingService,
	cat *catalog.Catalog,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		repo:         repo,
		availability: availability,
		pricing:      pricing,
		catalog:      cat,
		logger:       logger,
	}
}

// Submit runs the full submission protocol and persists one composite
// reservation with status Confirmed. The client's running total is ignored;
// the cost is recomputed here. Conflicts name the contested resource.
func (s *BookingService) Submit(req *models.CreateReservationRequest) (*models.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.SelectedGround != "" {
		if !s.catalog.HasGround(req.SelectedGround) {
			return nil, &models.ValidationError{Fields: map[string]string{
				"selected_ground": fmt.Sprintf("Unknown ground %q", req.SelectedGround),
			}}
		}
		grounds, err := s.availability.CheckGround(req.GroundDate, req.SelectedGround)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return nil, err
			}
			s.logger.WithError(err).Error("Ground availability re-check failed during submission")
			return nil, ErrSubmissionFailed
		}
		if !grounds.SelectedAvailable {
			return nil, &GroundConflictError{Ground: req.SelectedGround, Date: req.GroundDate}
		}
	}

	accTypes := uniqueAccommodationTypes(req.Accommodation)
	for _, accType := range accTypes {
		ok, err := s.availability.CheckAccommodation(req.CheckInDate, req.CheckOutDate, accType)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) || errors.Is(err, ErrDatesRequired) ||
				errors.Is(err, ErrCheckOutNotAfterCheckIn) || errors.Is(err, ErrCheckInPast) {
				return nil, err
			}
			s.logger.WithError(err).WithField("type", accType).Error("Accommodation availability re-check failed during submission")
			return nil, ErrSubmissionFailed
		}
		if !ok {
			return nil, &database.AccommodationConflictError{Type: accType}
		}
	}

	breakdown, err := s.pricing.TotalCost(req)
	if err != nil {
		return nil, err
	}
	menuItems, err := s.pricing.ResolveMenuSelections(req.MenuItems)
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		People: req.People,

		Activities:    models.ActivitySelections(req.Activities),
		Food:          pq.StringArray(uniqueNames(req.Food)),
		Drinks:        pq.StringArray(uniqueNames(req.Drinks)),
		MenuItems:     menuItems,
		Accommodation: models.AccommodationSelections(req.Accommodation),

		AccommodationTypes: pq.StringArray(accTypes),

		CheckInDate:  optional(req.CheckInDate),
		CheckOutDate: optional(req.CheckOutDate),
		CheckInTime:  optional(req.CheckInTime),
		CheckOutTime: optional(req.CheckOutTime),

		TotalCost: breakdown.Total,
	}

	if req.SelectedGround != "" {
		reservation.SelectedGround = optional(req.SelectedGround)
		reservation.GroundDate = optional(req.GroundDate)
		for _, ground := range s.catalog.Grounds {
			if ground.Name == req.SelectedGround {
				capacity := ground.Capacity
				reservation.GroundCapacity = &capacity
				break
			}
		}
	}

	if err := s.repo.CreateConfirmed(reservation); err != nil {
		var conflictErr *database.AccommodationConflictError
		if errors.Is(err, database.ErrGroundUnavailable) {
			return nil, &GroundConflictError{Ground: req.SelectedGround, Date: req.GroundDate}
		}
		if errors.As(err, &conflictErr) {
			return nil, conflictErr
		}
		s.logger.WithError(err).Error("Failed to persist reservation")
		return nil, ErrSubmissionFailed
	}

	s.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"total_cost":     reservation.TotalCost,
	}).Info("Reservation confirmed")
	return reservation, nil
}

func uniqueAccommodationTypes(selections []models.AccommodationSelection) []string {
	seen := make(map[string]bool, len(selections))
	types := make([]string, 0, len(selections))
	for _, sel := range selections {
		if !seen[sel.Type] {
			seen[sel.Type] = true
			types = append(types, sel.Type)
		}
	}
	return types
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
