package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// Auth validates the bearer token, rejects revoked sessions, and injects the
// resolved ports.Session into context under the "session" key.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			tokenID, _ := claims["jti"].(string)
			session := ports.Session{Username: username, TokenID: tokenID}
			if session.Username == "" || session.TokenID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A structurally valid token is not enough: logout revokes the
			// session server-side and the token must die with it.
			active, err := sessions.IsActive(c.Request().Context(), session)
			if err != nil {
				return err
			}
			if !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set("session", session)
			c.Set("tier", claims["tier"])

			return next(c)
		}
	}
}
