// Package usecase contains the business logic for itinerary planning.
// It orchestrates completion-service calls into a day-by-day itinerary with
// graceful degradation on every external failure.
package usecase

import (
	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// PlanRequest describes one planning run.
type PlanRequest struct {
	// Trip is the immutable trip request being planned
	Trip domain.TripRequest

	// StartDay is the first 1-based day to (re)generate (default: 1)
	StartDay int

	// EndDay is the last day to generate; 0 means through the final trip day
	EndDay int

	// Prior carries already-planned days used as continuity context.
	// They are never returned, only summarized into prompts.
	Prior []domain.ItineraryDay

	// Original is the itinerary being revised. Supplying it marks the run
	// as a replan even when StartDay is 1.
	Original []domain.ItineraryDay
}

// SetDefaults applies default values to the day range.
func (r *PlanRequest) SetDefaults() {
	if r.StartDay < 1 {
		r.StartDay = 1
	}
	r.Trip.SetDefaults()
}

// IsReplan reports whether this run revises an existing itinerary.
// Replans skip flight discovery and use the replanning prompt variant.
func (r *PlanRequest) IsReplan() bool {
	return r.StartDay > 1 || len(r.Original) > 0
}

// contextDays returns the days that seed continuity and duplicate avoidance:
// the original itinerary when replanning, otherwise any prior days supplied.
func (r *PlanRequest) contextDays() []domain.ItineraryDay {
	if len(r.Original) > 0 {
		return r.Original
	}
	return r.Prior
}
