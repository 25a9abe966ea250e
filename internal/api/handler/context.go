package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// ctxSession extracts the session injected by the Auth middleware and
// performs a fast-fail check before any service call: both fields must be
// present, which proves the middleware ran on this route.
func ctxSession(c echo.Context) (ports.Session, error) {
	session, _ := c.Get("session").(ports.Session)
	if session.Username == "" || session.TokenID == "" {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}
