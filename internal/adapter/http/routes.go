package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all itinerary planning API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	trips := api.Group("/trips")
	trips.POST("/plan", h.PlanTrip)
	trips.POST("/replan", h.ReplanTrip)
	trips.GET("/:id/components", h.ListComponents)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	trips := api.Group("/trips")
	trips.POST("/plan", h.PlanTrip)
	trips.POST("/replan", h.ReplanTrip)
	trips.GET("/:id/components", h.ListComponents)
}
