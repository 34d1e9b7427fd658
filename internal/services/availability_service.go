package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/canaville/resort-booking-backend/internal/catalog"
	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDatesRequired indicates a range check was attempted without both dates
	ErrDatesRequired = errors.New("check-in and check-out dates are required")

	// ErrCheckOutNotAfterCheckIn indicates an empty or inverted date range
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")

	// ErrCheckInPast indicates a check-in date before today
	ErrCheckInPast = errors.New("check-in date cannot be in the past")
)

// reservationReader is the slice of the reservation repository the
// availability checker needs.
type reservationReader interface {
	GroundsReservedOn(date string) ([]string, error)
	HasAccommodationConflict(accType, checkInDate, checkOutDate string) (bool, error)
}

// DateRange is one bookable window, [Start, End) by date
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GroundAvailability reports, for one date, which grounds are still free
type GroundAvailability struct {
	Date              string          `json:"date"`
	Availability      map[string]bool `json:"availability"`
	SelectedGround    string          `json:"selected_ground,omitempty"`
	SelectedAvailable bool            `json:"selected_available"`
}

// AvailabilityService answers whether grounds and accommodation types are
// free for requested dates. Checks against the store are advisory; the
// reservation write re-validates under a transaction.
type AvailabilityService struct {
	repo    reservationReader
	catalog *catalog.Catalog
	logger  *logrus.Logger

	// now is injectable for tests
	now func() time.Time
}

// NewAvailabilityService creates a new AvailabilityService
func NewAvailabilityService(repo reservationReader, cat *catalog.Catalog, logger *logrus.Logger) *AvailabilityService {
	return &AvailabilityService{
		repo:    repo,
		catalog: cat,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckGround returns the availability of every ground on the given date and
// whether the currently selected ground (if any) is still free. A ground is
// taken for the whole day once any active reservation holds it.
func (s *AvailabilityService) CheckGround(date, selectedGround string) (*GroundAvailability, error) {
	if date == "" {
		return nil, &models.ValidationError{Fields: map[string]string{"date": "Date is required"}}
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, &models.ValidationError{Fields: map[string]string{"date": "Invalid date format, expected YYYY-MM-DD"}}
	}

	reserved, err := s.repo.GroundsReservedOn(date)
	if err != nil {
		s.logger.WithError(err).WithField("date", date).Error("Ground availability query failed")
		return nil, fmt.Errorf("failed to check ground availability: %w", err)
	}

	taken := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		taken[name] = true
	}

	result := &GroundAvailability{
		Date:           date,
		Availability:   make(map[string]bool, len(s.catalog.Grounds)),
		SelectedGround: selectedGround,
	}
	for _, ground := range s.catalog.Grounds {
		result.Availability[ground.Name] = !taken[ground.Name]
	}
	result.SelectedAvailable = selectedGround != "" && !taken[selectedGround]
	return result, nil
}

// CheckAccommodation reports whether one accommodation type is free for
// [checkInDate, checkOutDate). Preconditions are validation errors; a store
// failure is returned as an error and callers must treat it as unavailable.
func (s *AvailabilityService) CheckAccommodation(checkInDate, checkOutDate, accType string) (bool, error) {
	if err := s.validateRange(checkInDate, checkOutDate); err != nil {
		return false, err
	}

	conflict, err := s.repo.HasAccommodationConflict(accType, checkInDate, checkOutDate)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"type":      accType,
			"check_in":  checkInDate,
			"check_out": checkOutDate,
		}).Error("Accommodation availability query failed")
		return false, fmt.Errorf("failed to check accommodation availability: %w", err)
	}
	return !conflict, nil
}

// CheckAccommodationForAll checks every catalog accommodation type for the
// given range. One query runs per type concurrently; all results are joined
// before the map is assembled, so callers never observe a partial update.
// An available type maps to its matching window, an unavailable one to an
// empty slice.
func (s *AvailabilityService) CheckAccommodationForAll(checkInDate, checkOutDate string) (map[string][]DateRange, error) {
	if checkInDate == "" || checkOutDate == "" {
		return nil, ErrDatesRequired
	}
	if err := s.validateRange(checkInDate, checkOutDate); err != nil {
		return nil, err
	}

	types := s.catalog.AccommodationTypes()
	available := make([]bool, len(types))
	errs := make([]error, len(types))

	var wg sync.WaitGroup
	for i, accType := range types {
		wg.Add(1)
		go func(i int, accType string) {
			defer wg.Done()
			available[i], errs[i] = s.CheckAccommodation(checkInDate, checkOutDate, accType)
		}(i, accType)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string][]DateRange, len(types))
	for i, accType := range types {
		if available[i] {
			result[accType] = []DateRange{{Start: checkInDate, End: checkOutDate}}
		} else {
			result[accType] = []DateRange{}
		}
	}
	return result, nil
}

func (s *AvailabilityService) validateRange(checkInDate, checkOutDate string) error {
	if checkInDate == "" || checkOutDate == "" {
		return ErrDatesRequired
	}

	in, err := time.Parse(models.DateLayout, checkInDate)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q: %w", checkInDate, err)
	}
	out, err := time.Parse(models.DateLayout, checkOutDate)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q: %w", checkOutDate, err)
	}

	if !out.After(in) {
		return ErrCheckOutNotAfterCheckIn
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if in.Before(today) {
		return ErrCheckInPast
	}
	return nil
}
