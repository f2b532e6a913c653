package handler // handler defines the HTTP handlers for the booking API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/middleware"
)

// fail writes the API error body.  Every error response carries a
// human-readable message under the "message" key so clients can surface
// it directly, plus success=false.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg, "success": false})
}

// currentUser extracts the authenticated user's id placed in the context
// by the JWT middleware.  A false return means the middleware did not run
// for this route and the handler should reject the request.
func currentUser(c echo.Context) (string, bool) {
	return middleware.UserID(c)
}
