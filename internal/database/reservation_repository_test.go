package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationFixture() *models.Reservation {
	ground := "Tulia"
	groundDate := "2026-09-12"
	capacity := 150
	checkIn := "2026-09-12"
	checkOut := "2026-09-14"
	checkInTime := "14:00"
	checkOutTime := "10:00"

	return &models.Reservation{
		Name:   "Jane Wanjiku",
		Email:  "jane@example.com",
		Phone:  "0712345678",
		Date:   "2026-09-12",
		Time:   "10:00",
		People: "12",

		Activities: models.ActivitySelections{
			{Name: "Team Building", Option: "With Facilitator", NumberOfPeople: 12},
		},
		Food:   pq.StringArray{"Buffet"},
		Drinks: pq.StringArray{"Soft Drinks"},
		MenuItems: models.MenuSelections{
			{Name: "Chapati", UnitPrice: 150, Quantity: 4},
		},
		Accommodation: models.AccommodationSelections{
			{Type: "Camping", Bedding: true, Pax: 2},
		},
		AccommodationTypes: pq.StringArray{"Camping"},

		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
		CheckInTime:  &checkInTime,
		CheckOutTime: &checkOutTime,

		SelectedGround: &ground,
		GroundCapacity: &capacity,
		GroundDate:     &groundDate,

		TotalCost: 188600,
	}
}

func TestCreateConfirmed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		reservation := reservationFixture()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("accommodation:Camping").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Camping", "2026-09-12", "2026-09-14").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO reservations`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateConfirmed(reservation)
		require.NoError(t, err)
		assert.NotEmpty(t, reservation.ID)
		assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
		assert.False(t, reservation.CreatedAt.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Accommodation Conflict", func(t *testing.T) {
		reservation := reservationFixture()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("accommodation:Camping").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Camping", "2026-09-12", "2026-09-14").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.CreateConfirmed(reservation)
		require.Error(t, err)

		var conflict *AccommodationConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Camping", conflict.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ground Double Booking", func(t *testing.T) {
		reservation := reservationFixture()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("accommodation:Camping").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Camping", "2026-09-12", "2026-09-14").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO reservations`).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateConfirmed(reservation)
		assert.ErrorIs(t, err, ErrGroundUnavailable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Accommodation Skips Conflict Check", func(t *testing.T) {
		reservation := reservationFixture()
		reservation.ID = ""
		reservation.Accommodation = nil
		reservation.AccommodationTypes = nil
		reservation.CheckInDate = nil
		reservation.CheckOutDate = nil

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO reservations`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateConfirmed(reservation)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		reservation := reservationFixture()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		err := repo.CreateConfirmed(reservation)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to lock accommodation type")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "date", "time", "people",
		"activities", "food", "drinks", "menu_items", "accommodation", "accommodation_types",
		"check_in_date", "check_out_date", "check_in_time", "check_out_time",
		"selected_ground", "ground_capacity", "ground_date",
		"total_cost", "status", "created_at",
	})
}

func addReservationRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	return rows.AddRow(
		id, "Jane Wanjiku", "jane@example.com", "0712345678", "2026-09-12", "10:00", "12",
		[]byte(`[{"name":"Team Building","option":"With Facilitator","number_of_people":12}]`),
		[]byte(`{Buffet}`), []byte(`{"Soft Drinks"}`),
		[]byte(`[{"name":"Chapati","unit_price":150,"quantity":4}]`),
		[]byte(`[{"type":"Camping","bedding":true,"pax":2}]`),
		[]byte(`{Camping}`),
		"2026-09-12", "2026-09-14", "14:00", "10:00",
		"Tulia", 150, "2026-09-12",
		int64(188600), "Confirmed", time.Now(),
	)
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM reservations WHERE id`).
			WithArgs("res-1").
			WillReturnRows(addReservationRow(reservationRows(), "res-1"))

		reservation, err := repo.GetByID("res-1")
		require.NoError(t, err)
		assert.Equal(t, "res-1", reservation.ID)
		assert.Equal(t, "Jane Wanjiku", reservation.Name)
		assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
		require.Len(t, reservation.Activities, 1)
		assert.Equal(t, "Team Building", reservation.Activities[0].Name)
		require.NotNil(t, reservation.SelectedGround)
		assert.Equal(t, "Tulia", *reservation.SelectedGround)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM reservations WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID("missing")
		assert.ErrorIs(t, err, ErrReservationNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows()
		addReservationRow(rows, "res-2")
		addReservationRow(rows, "res-1")

		mock.ExpectQuery(`SELECT .+ FROM reservations ORDER BY created_at DESC`).
			WillReturnRows(rows)

		reservations, err := repo.List()
		require.NoError(t, err)
		require.Len(t, reservations, 2)
		assert.Equal(t, "res-2", reservations[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM reservations ORDER BY created_at DESC`).
			WillReturnError(fmt.Errorf("database error"))

		_, err := repo.List()
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroundsReservedOn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT selected_ground FROM reservations`).
			WithArgs("2026-09-12").
			WillReturnRows(sqlmock.NewRows([]string{"selected_ground"}).
				AddRow("Tulia").
				AddRow("Zanzi"))

		grounds, err := repo.GroundsReservedOn("2026-09-12")
		require.NoError(t, err)
		assert.Equal(t, []string{"Tulia", "Zanzi"}, grounds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Reservations", func(t *testing.T) {
		mock.ExpectQuery(`SELECT selected_ground FROM reservations`).
			WithArgs("2026-09-13").
			WillReturnRows(sqlmock.NewRows([]string{"selected_ground"}))

		grounds, err := repo.GroundsReservedOn("2026-09-13")
		require.NoError(t, err)
		assert.Empty(t, grounds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHasAccommodationConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepository(&mockDatabase{db: db})

	t.Run("Conflict", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Camping", "2026-09-12", "2026-09-14").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		conflict, err := repo.HasAccommodationConflict("Camping", "2026-09-12", "2026-09-14")
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("No Conflict", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Glamping", "2026-09-12", "2026-09-14").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		conflict, err := repo.HasAccommodationConflict("Glamping", "2026-09-12", "2026-09-14")
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Camping", "2026-09-12", "2026-09-14").
			WillReturnError(fmt.Errorf("database error"))

		_, err := repo.HasAccommodationConflict("Camping", "2026-09-12", "2026-09-14")
		assert.Error(t, err)
	})
}

// mockDatabase wraps sqlmock's *sql.DB to satisfy the DB interface
type mockDatabase struct {
	db *sql.DB
}

func (m *mockDatabase) Get(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Get not implemented in mock")
}

func (m *mockDatabase) Select(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Select not implemented in mock")
}

func (m *mockDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *mockDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *mockDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *mockDatabase) Begin() (*sql.Tx, error) {
	return m.db.Begin()
}

func (m *mockDatabase) Ping() error {
	return m.db.Ping()
}

func (m *mockDatabase) Close() error {
	return m.db.Close()
}
