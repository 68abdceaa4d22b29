// Package http provides the HTTP handler layer for the itinerary planning API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"time"
)

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayout is the calendar date layout accepted by the API.
const dateLayout = "2006-01-02"

// PlanTripRequest represents the request body for a fresh planning run.
type PlanTripRequest struct {
	// TripID identifies the trip for component bookkeeping (optional).
	// Anonymous requests still get an itinerary, but nothing is persisted.
	TripID string `json:"trip_id,omitempty"`

	// Destination is the city or region being visited (e.g., "Paris")
	Destination string `json:"destination"`

	// Origin is the departure city used for flight discovery (optional)
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

	// TripType is a free-text tag describing the trip style (e.g., "family")
	TripType string `json:"trip_type,omitempty"`
}

// ReplanTripRequest represents the request body for revising an itinerary.
// The trip fields are identical to a fresh plan; the extra fields select the
// day range and supply the itinerary being revised.
type ReplanTripRequest struct {
	PlanTripRequest

	// StartDay is the first 1-based day to regenerate (default: 1)
	StartDay int `json:"start_day"`

	// EndDay is the last day to regenerate; 0 means through the final trip day
	EndDay int `json:"end_day,omitempty"`

	// OriginalItinerary is the itinerary being revised
	OriginalItinerary []DayDTO `json:"original_itinerary,omitempty"`

	// PriorDays carries extra already-planned days as continuity context
	PriorDays []DayDTO `json:"prior_days,omitempty"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the plan request and returns any validation errors.
func (r *PlanTripRequest) Validate() error {
	errs := &ValidationErrors{}
	r.validate(errs)
	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *PlanTripRequest) validate(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}

	start := r.validateDate(errs, "start_date", r.StartDate)
	end := r.validateDate(errs, "end_date", r.EndDate)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if r.NumAdults < 0 {
		errs.Add("num_adults", "num_adults must not be negative")
	}
	if r.NumChildren < 0 {
		errs.Add("num_children", "num_children must not be negative")
	}

	if r.BudgetMin < 0 {
		errs.Add("budget_min", "budget_min must not be negative")
	}
	if r.BudgetMax > 0 && r.BudgetMin > r.BudgetMax {
		errs.Add("budget_min", "budget_min must not exceed budget_max")
	}
}

func (r *PlanTripRequest) validateDate(errs *ValidationErrors, field, value string) time.Time {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}
	}
	return parsed
}

// Validate validates the replan request and returns any validation errors.
func (r *ReplanTripRequest) Validate() error {
	errs := &ValidationErrors{}
	r.PlanTripRequest.validate(errs)

	if r.StartDay < 0 {
		errs.Add("start_day", "start_day must not be negative")
	}
	if r.EndDay < 0 {
		errs.Add("end_day", "end_day must not be negative")
	}
	if r.EndDay > 0 && r.StartDay > r.EndDay {
		errs.Add("start_day", "start_day must not exceed end_day")
	}

	for _, day := range r.OriginalItinerary {
		if day.DayNumber < 1 {
			errs.Add("original_itinerary", "day numbers must be positive")
			break
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
