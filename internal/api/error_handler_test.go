package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrReservationNotFound, http.StatusNotFound, "reservation not found"},
		{domain.ErrUserExists, http.StatusConflict, "username already in use"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{domain.ErrInvalidTier, http.StatusBadRequest, domain.ErrInvalidTier.Error()},
		{domain.ErrInvalidFlightDate, http.StatusBadRequest, domain.ErrInvalidFlightDate.Error()},
		{domain.ErrInvalidTicketCount, http.StatusBadRequest, domain.ErrInvalidTicketCount.Error()},
		{domain.ErrMissingFields, http.StatusBadRequest, domain.ErrMissingFields.Error()},
		{fmt.Errorf("save users: %w", domain.ErrStoreSave), http.StatusInternalServerError, "failed to persist changes"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.wantMsg, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusUnprocessableEntity, "tickets must be greater than 0"), c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error != "tickets must be greater than 0" {
		t.Errorf("message not preserved: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	handler(domain.ErrUserNotFound, c)

	if rec.Code != http.StatusOK {
		t.Errorf("committed response must not be rewritten, got %d", rec.Code)
	}
}
