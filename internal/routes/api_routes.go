package routes

import (
	"skyward/farecast/internal/api"
	"skyward/farecast/internal/metrics"
	"skyward/farecast/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Flight search and offer tooling
		v1.Get("/flights/search", api.SearchHandler(deps.Services.Search))
		v1.Get("/flights/{flight_id}/seats", api.SeatMapHandler(deps.Services.Search))
		v1.Post("/flights/advise", api.AdviseHandler(deps.Services.Search, deps.Advisor))

		// Fare calendar
		v1.Get("/fares/calendar", api.FareCalendarHandler(deps.Services.Fares))

		// Bookings
		v1.Post("/bookings", api.CreateBookingHandler(deps.Services.Bookings))
		v1.Get("/bookings", api.ListBookingsHandler(deps.Services.Bookings))
		v1.Get("/bookings/{booking_id}", api.GetBookingHandler(deps.Services.Bookings))
		v1.Patch("/bookings/{booking_id}/status", api.UpdateBookingStatusHandler(deps.Services.Bookings))

		// Airport reference data management
		v1.Post("/admin/airports/import", api.ImportAirportsHandler(deps.Loader))
	})
}
