// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/handler"
	"github.com/iliyamo/movie-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probes hit this endpoint to verify that
	// the service is up.
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the authentication endpoints under /api/auth.
// Register and login issue access tokens; there is no refresh endpoint,
// clients simply log in again once the token expires.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterCatalog registers the browse endpoints for movies, theatres and
// showtimes.  Reads are public so that guests can explore the catalog before
// signing up; the extra middlewares (typically the Redis response cache and
// the rate limiter) are applied only to this group.  Writes are restricted
// to the ADMIN role.
func RegisterCatalog(e *echo.Echo, m *handler.MovieHandler, t *handler.TheatreHandler, s *handler.ShowtimeHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	pub := e.Group("/api", extra...)
	pub.GET("/movies", m.List)
	pub.GET("/movies/:id", m.Get)
	pub.GET("/theatres", t.List)
	pub.GET("/showtimes", s.List)
	pub.GET("/showtimes/:id/seats", s.Seats)

	admin := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	admin.POST("/movies", m.Create)
	admin.POST("/theatres", t.Create)
	admin.POST("/showtimes", s.Create)
}

// RegisterBookings registers the booking endpoints under /api/bookings.
// All routes require a valid JWT; both customers and admins may book.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/api/bookings",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("USER", "ADMIN"),
	)
	g.POST("", b.Create)
	g.GET("", b.List)
	g.GET("/:id", b.Get)
	g.DELETE("/:id", b.Cancel)
}
