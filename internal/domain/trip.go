package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the calendar date layout used throughout the system.
const DateFormat = "2006-01-02"

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TripRequest defines the immutable input to itinerary planning.
// It is created by a separate intake flow and never mutated by the orchestrator.
type TripRequest struct {
	// ID identifies the trip for component bookkeeping.
	// When empty, side-effect records are skipped (the itinerary is still produced).
	ID string `json:"id,omitempty"`

	// Destination is the city or region being visited (e.g., "Paris")
	Destination string `json:"destination"`

	// Origin is the departure city used for flight discovery (e.g., "Tel Aviv")
	Origin string `json:"origin,omitempty"`

	// StartDate is the first day of the trip in YYYY-MM-DD format
	StartDate string `json:"start_date"`

	// EndDate is the last day of the trip in YYYY-MM-DD format
	EndDate string `json:"end_date"`

	// NumAdults is the number of adult travellers (default: 1)
	NumAdults int `json:"num_adults"`

	// NumChildren is the number of child travellers
	NumChildren int `json:"num_children"`

	// BudgetMin is the lower bound of the total trip budget
	BudgetMin float64 `json:"budget_min"`

	// BudgetMax is the upper bound of the total trip budget
	BudgetMax float64 `json:"budget_max"`

	// TripType is a free-text tag describing the trip style (e.g., "family", "romantic")
	TripType string `json:"trip_type,omitempty"`
}

// Validate checks if the trip request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (t *TripRequest) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	start, err := t.parseDate("start_date", t.StartDate)
	if err != nil {
		return err
	}
	end, err := t.parseDate("end_date", t.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidRequest)
	}

	if t.NumAdults < 1 {
		return fmt.Errorf("%w: num_adults must be at least 1", ErrInvalidRequest)
	}
	if t.NumChildren < 0 {
		return fmt.Errorf("%w: num_children must not be negative", ErrInvalidRequest)
	}

	if t.BudgetMin < 0 {
		return fmt.Errorf("%w: budget_min must not be negative", ErrInvalidRequest)
	}
	if t.BudgetMax > 0 && t.BudgetMin > t.BudgetMax {
		return fmt.Errorf("%w: budget_min must not exceed budget_max", ErrInvalidRequest)
	}

	return nil
}

func (t *TripRequest) parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return parsed, nil
}

// SetDefaults applies default values to empty optional fields.
func (t *TripRequest) SetDefaults() {
	if t.NumAdults == 0 {
		t.NumAdults = 1
	}
	if t.TripType == "" {
		t.TripType = "leisure"
	}
}

// Dates returns the parsed start and end dates of the trip.
func (t *TripRequest) Dates() (start, end time.Time, err error) {
	start, err = t.parseDate("start_date", t.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = t.parseDate("end_date", t.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// TotalDays returns the number of calendar days covered by the trip, inclusive
// of both endpoints. Returns 0 when the dates are malformed.
func (t *TripRequest) TotalDays() int {
	start, end, err := t.Dates()
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateForDay returns the calendar date of the given 1-based day number.
func (t *TripRequest) DateForDay(day int) (time.Time, error) {
	start, _, err := t.Dates()
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, day-1), nil
}

// Travellers returns the total number of travellers on the trip.
func (t *TripRequest) Travellers() int {
	return t.NumAdults + t.NumChildren
}
