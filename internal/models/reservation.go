package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/lib/pq"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// DateLayout is the wire and storage format for calendar dates
const DateLayout = "2006-01-02"

// ActivitySelection is one chosen activity with its option and headcount
type ActivitySelection struct {
	Name           string `json:"name"`
	Option         string `json:"option"`
	NumberOfPeople int    `json:"number_of_people"`
}

// AccommodationSelection is one chosen accommodation type
type AccommodationSelection struct {
	Type    string `json:"type"`
	Bedding bool   `json:"bedding"`
	Pax     int    `json:"pax"`
}

// MenuSelection is one menu item with its quantity. UnitPrice is resolved
// server-side from the catalog; any client-supplied value is ignored.
type MenuSelection struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// ActivitySelections stores a JSONB activity list
type ActivitySelections []ActivitySelection

// Value implements the driver.Valuer interface
func (a ActivitySelections) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]ActivitySelection{})
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *ActivitySelections) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// AccommodationSelections stores a JSONB accommodation list
type AccommodationSelections []AccommodationSelection

// Value implements the driver.Valuer interface
func (a AccommodationSelections) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]AccommodationSelection{})
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *AccommodationSelections) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// MenuSelections stores a JSONB menu item list
type MenuSelections []MenuSelection

// Value implements the driver.Valuer interface
func (m MenuSelections) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal([]MenuSelection{})
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *MenuSelections) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported scan source %T", src)
	}
}

// Reservation is one composite booking record. Dates are stored as
// YYYY-MM-DD text and times as HH:MM text, matching the legacy document
// shape; lexicographic order on that date format is chronological order.
type Reservation struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`

	Date   string `json:"date" db:"date"`
	Time   string `json:"time" db:"time"`
	People string `json:"people,omitempty" db:"people"`

	Activities    ActivitySelections      `json:"activities" db:"activities"`
	Food          pq.StringArray          `json:"food" db:"food"`
	Drinks        pq.StringArray          `json:"drinks" db:"drinks"`
	MenuItems     MenuSelections          `json:"menu_items" db:"menu_items"`
	Accommodation AccommodationSelections `json:"accommodation" db:"accommodation"`

	// AccommodationTypes is derived from Accommodation at write time so
	// conflict queries can match on a plain text[] column.
	AccommodationTypes pq.StringArray `json:"-" db:"accommodation_types"`

	CheckInDate  *string `json:"check_in_date,omitempty" db:"check_in_date"`
	CheckOutDate *string `json:"check_out_date,omitempty" db:"check_out_date"`
	CheckInTime  *string `json:"check_in_time,omitempty" db:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty" db:"check_out_time"`

	SelectedGround *string `json:"selected_ground,omitempty" db:"selected_ground"`
	GroundCapacity *int    `json:"ground_capacity,omitempty" db:"ground_capacity"`
	GroundDate     *string `json:"ground_date,omitempty" db:"ground_date"`

	TotalCost int64             `json:"total_cost" db:"total_cost"`
	Status    ReservationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// CreateReservationRequest is the submission payload for a new reservation
type CreateReservationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	People string `json:"people"`

	Activities    []ActivitySelection      `json:"activities"`
	Food          []string                 `json:"food"`
	Drinks        []string                 `json:"drinks"`
	MenuItems     []MenuSelection          `json:"menu_items"`
	Accommodation []AccommodationSelection `json:"accommodation"`

	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`

	SelectedGround string `json:"selected_ground"`
	GroundDate     string `json:"ground_date"`
}

var (
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRegex = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

// ValidationError carries per-field validation messages
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks every rule the booking form enforces before submission.
// It returns a *ValidationError naming each offending field, or nil.
func (r *CreateReservationRequest) Validate() error {
	errs := map[string]string{}

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Name is required"
	}
	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(r.Email) {
		errs["email"] = "Invalid email format"
	}
	if r.Phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRegex.MatchString(r.Phone) {
		errs["phone"] = "Invalid phone number format"
	}
	if r.Date == "" {
		errs["date"] = "Date is required"
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errs["date"] = "Invalid date format, expected YYYY-MM-DD"
	}
	if r.Time == "" {
		errs["time"] = "Time is required"
	}

	for i, activity := range r.Activities {
		if activity.Option == "" {
			errs[fmt.Sprintf("activities[%d].option", i)] = "An option must be selected for " + activity.Name
		}
	}

	for i, item := range r.MenuItems {
		if item.Quantity < 1 {
			errs[fmt.Sprintf("menu_items[%d].quantity", i)] = "Quantity must be at least 1"
		}
	}

	if len(r.Accommodation) > 0 {
		if r.CheckInDate == "" {
			errs["check_in_date"] = "Check-in date is required"
		}
		if r.CheckOutDate == "" {
			errs["check_out_date"] = "Check-out date is required"
		}
		if r.CheckInDate != "" && r.CheckOutDate != "" {
			in, inErr := time.Parse(DateLayout, r.CheckInDate)
			out, outErr := time.Parse(DateLayout, r.CheckOutDate)
			switch {
			case inErr != nil:
				errs["check_in_date"] = "Invalid date format, expected YYYY-MM-DD"
			case outErr != nil:
				errs["check_out_date"] = "Invalid date format, expected YYYY-MM-DD"
			case !out.After(in):
				errs["check_out_date"] = "Check-out date must be after check-in date"
			}
		}
		if r.CheckInTime == "" {
			errs["check_in_time"] = "Check-in time is required"
		}
		if r.CheckOutTime == "" {
			errs["check_out_time"] = "Check-out time is required"
		}
	}

	if r.SelectedGround != "" {
		if r.GroundDate == "" {
			errs["ground_date"] = "Ground date is required"
		} else if _, err := time.Parse(DateLayout, r.GroundDate); err != nil {
			errs["ground_date"] = "Invalid date format, expected YYYY-MM-DD"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Nights returns the billable night count for a date range: the ceiling of
// the day difference, and 1 when either date is missing or unparseable.
func Nights(checkInDate, checkOutDate string) int {
	if checkInDate == "" || checkOutDate == "" {
		return 1
	}
	in, err := time.Parse(DateLayout, checkInDate)
	if err != nil {
		return 1
	}
	out, err := time.Parse(DateLayout, checkOutDate)
	if err != nil {
		return 1
	}
	days := math.Ceil(math.Abs(out.Sub(in).Hours()) / 24)
	if days < 1 {
		return 1
	}
	return int(days)
}
