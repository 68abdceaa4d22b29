package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/http/response"
	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/usecase"
)

// TripHandler handles HTTP requests for itinerary planning endpoints.
type TripHandler struct {
	planner usecase.TripPlannerUseCase
	store   domain.ComponentStore
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(planner usecase.TripPlannerUseCase, store domain.ComponentStore) *TripHandler {
	return &TripHandler{
		planner: planner,
		store:   store,
	}
}

// PlanTrip handles POST /api/v1/trips/plan
//
// @Summary Generate a trip itinerary
// @Description Generates a day-by-day itinerary for a trip, including flight discovery
// @Tags trips
// @Accept json
// @Produce json
// @Param request body PlanTripRequest true "Trip to plan"
// @Success 200 {object} PlanResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Planner unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/plan [post]
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var req PlanTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.planner.PlanTrip(c.Request().Context(), usecase.PlanRequest{
		Trip: ToDomainTrip(&req),
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, FromItineraryResult(result))
}

// ReplanTrip handles POST /api/v1/trips/replan
//
// @Summary Revise part of an itinerary
// @Description Regenerates a day range of an existing itinerary, reusing the stored flight
// @Tags trips
// @Accept json
// @Produce json
// @Param request body ReplanTripRequest true "Replan parameters"
// @Success 200 {object} PlanResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Planner unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/replan [post]
func (h *TripHandler) ReplanTrip(c echo.Context) error {
	var req ReplanTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.planner.PlanTrip(c.Request().Context(), ToPlanRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, FromItineraryResult(result))
}

// ListComponents handles GET /api/v1/trips/:id/components
//
// @Summary List persisted trip components
// @Description Returns the flight and hotel components recorded for a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} ComponentListDTO
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/trips/{id}/components [get]
func (h *TripHandler) ListComponents(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return response.ValidationErrorWithMessage(c, "trip id is required")
	}

	components, err := h.store.ListByTrip(c.Request().Context(), tripID)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.OK(c, FromComponents(tripID, components))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	if errors.Is(err, domain.ErrCompletionUnavailable) {
		return response.ServiceUnavailable(c)
	}
	return response.InternalServerError(c)
}
