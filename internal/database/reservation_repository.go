package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrGroundUnavailable indicates the requested ground already has a
// reservation on the requested date.
var ErrGroundUnavailable = errors.New("ground already reserved for this date")

// ErrReservationNotFound indicates the reservation does not exist
var ErrReservationNotFound = errors.New("reservation not found")

// AccommodationConflictError indicates an accommodation type is already
// reserved for an overlapping date range.
type AccommodationConflictError struct {
	Type string
}

// Error implements the error interface
func (e *AccommodationConflictError) Error() string {
	return fmt.Sprintf("%s is not available for the selected dates", e.Type)
}

// ReservationRepository handles database operations for the reservations table
type ReservationRepository struct {
	db DB
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `id, name, email, phone, date, time, people,
	   activities, food, drinks, menu_items, accommodation, accommodation_types,
	   check_in_date, check_out_date, check_in_time, check_out_time,
	   selected_ground, ground_capacity, ground_date,
	   total_cost, status, created_at`

// CreateConfirmed persists a reservation with status Confirmed. The write is
// conditional: inside one transaction it re-checks accommodation range
// exclusivity under per-type advisory locks, and the partial unique index on
// (selected_ground, ground_date) rejects a double-booked ground. Two racing
// submissions for the same slot cannot both commit.
func (r *ReservationRepository) CreateConfirmed(reservation *models.Reservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	reservation.Status = models.ReservationStatusConfirmed
	reservation.CreatedAt = time.Now().UTC()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock types in sorted order so concurrent submissions cannot deadlock.
	types := append([]string(nil), reservation.AccommodationTypes...)
	sort.Strings(types)
	for _, accType := range types {
		if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, "accommodation:"+accType); err != nil {
			return fmt.Errorf("failed to lock accommodation type: %w", err)
		}

		var conflict bool
		err := tx.QueryRow(`
			SELECT EXISTS (
				SELECT 1 FROM reservations
				WHERE status IN ('Confirmed', 'Pending')
				  AND $1 = ANY(accommodation_types)
				  AND check_in_date IS NOT NULL
				  AND check_out_date IS NOT NULL
				  AND check_in_date < $3
				  AND $2 < check_out_date
			)
		`, accType, derefOrEmpty(reservation.CheckInDate), derefOrEmpty(reservation.CheckOutDate)).Scan(&conflict)
		if err != nil {
			return fmt.Errorf("failed to check accommodation conflict: %w", err)
		}
		if conflict {
			return &AccommodationConflictError{Type: accType}
		}
	}

	_, err = tx.Exec(`
		INSERT INTO reservations (
			id, name, email, phone, date, time, people,
			activities, food, drinks, menu_items, accommodation, accommodation_types,
			check_in_date, check_out_date, check_in_time, check_out_time,
			selected_ground, ground_capacity, ground_date,
			total_cost, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17,
			$18, $19, $20,
			$21, $22, $23
		)
	`,
		reservation.ID, reservation.Name, reservation.Email, reservation.Phone,
		reservation.Date, reservation.Time, reservation.People,
		reservation.Activities, reservation.Food, reservation.Drinks,
		reservation.MenuItems, reservation.Accommodation, reservation.AccommodationTypes,
		reservation.CheckInDate, reservation.CheckOutDate, reservation.CheckInTime, reservation.CheckOutTime,
		reservation.SelectedGround, reservation.GroundCapacity, reservation.GroundDate,
		reservation.TotalCost, reservation.Status, reservation.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrGroundUnavailable
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(id string) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	reservation, err := scanReservation(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return reservation, nil
}

// List retrieves all reservations, newest first
func (r *ReservationRepository) List() ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, rows.Err()
}

// GroundsReservedOn returns the names of grounds already reserved on a date
func (r *ReservationRepository) GroundsReservedOn(date string) ([]string, error) {
	query := `
		SELECT selected_ground FROM reservations
		WHERE ground_date = $1
		  AND selected_ground IS NOT NULL
		  AND status <> 'Cancelled'
	`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query ground reservations: %w", err)
	}
	defer rows.Close()

	var grounds []string
	for rows.Next() {
		var ground string
		if err := rows.Scan(&ground); err != nil {
			return nil, fmt.Errorf("failed to scan ground: %w", err)
		}
		grounds = append(grounds, ground)
	}
	return grounds, rows.Err()
}

// HasAccommodationConflict reports whether any Confirmed or Pending
// reservation of the given type overlaps [checkInDate, checkOutDate).
func (r *ReservationRepository) HasAccommodationConflict(accType, checkInDate, checkOutDate string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE status IN ('Confirmed', 'Pending')
			  AND $1 = ANY(accommodation_types)
			  AND check_in_date IS NOT NULL
			  AND check_out_date IS NOT NULL
			  AND check_in_date < $3
			  AND $2 < check_out_date
		)
	`

	var conflict bool
	if err := r.db.QueryRow(query, accType, checkInDate, checkOutDate).Scan(&conflict); err != nil {
		return false, fmt.Errorf("failed to check accommodation conflict: %w", err)
	}
	return conflict, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*models.Reservation, error) {
	var reservation models.Reservation
	err := row.Scan(
		&reservation.ID, &reservation.Name, &reservation.Email, &reservation.Phone,
		&reservation.Date, &reservation.Time, &reservation.People,
		&reservation.Activities, &reservation.Food, &reservation.Drinks,
		&reservation.MenuItems, &reservation.Accommodation, &reservation.AccommodationTypes,
		&reservation.CheckInDate, &reservation.CheckOutDate, &reservation.CheckInTime, &reservation.CheckOutTime,
		&reservation.SelectedGround, &reservation.GroundCapacity, &reservation.GroundDate,
		&reservation.TotalCost, &reservation.Status, &reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
