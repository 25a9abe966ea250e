package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/voyagekit/flight-booking/internal/core/domain"
	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// BookingHandler handles HTTP requests for reservations and itineraries.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Book creates a reservation for any registered username. The route carries
// no auth; booking on behalf of another account is allowed.
//
// @Summary      Book a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      bookRequest  true  "Reservation details"
// @Success      201   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/reservations [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.bookings.Book(c.Request().Context(), ports.BookInput{
		FlightDate:   req.FlightDate,
		PremiumCabin: req.PremiumCabin,
		Tickets:      req.Tickets,
		Airline:      req.Airline,
		Username:     req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toReservationResponse(res))
}

// Confirm attaches payment, seat and baggage details to one of the
// authenticated user's reservations, targeted by explicit index.
//
// @Summary      Confirm a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        index  path      int             true  "Zero-based reservation index"
// @Param        body   body      confirmRequest  true  "Confirmation details"
// @Success      200    {object}  reservationResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/account/reservations/{index}/confirmation [put]
func (h *BookingHandler) Confirm(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation index")
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.bookings.Confirm(c.Request().Context(), ports.ConfirmInput{
		Username:     session.Username,
		Index:        index,
		CardNumber:   req.CardNumber,
		Installments: req.Installments,
		CabinClass:   req.CabinClass,
		SeatNumber:   req.SeatNumber,
		Bags:         req.Bags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReservationResponse(res))
}

// Itinerary returns the authenticated user's reservations in insertion
// order with the rendered text summary.
//
// @Summary      Get the current user's itinerary
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  itineraryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/account/itinerary [get]
func (h *BookingHandler) Itinerary(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	itinerary, err := h.bookings.Itinerary(c.Request().Context(), session.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toItineraryResponse(itinerary))
}

// --- Service result → HTTP response ---

func toReservationResponse(r *domain.Reservation) reservationResponse {
	resp := reservationResponse{
		Username:     r.Username,
		FlightDate:   r.FlightDateText(),
		PremiumCabin: r.PremiumCabin,
		Tickets:      r.Tickets,
		Airline:      r.Airline,
		Confirmed:    r.Confirmed,
	}
	if r.Confirmed {
		resp.Confirmation = &confirmationResponse{
			CardNumber:   r.Confirmation.CardNumber,
			Installments: r.Confirmation.Installments,
			CabinClass:   r.Confirmation.CabinClass,
			SeatNumber:   r.Confirmation.SeatNumber,
			Bags:         r.Confirmation.Bags,
		}
	}
	return resp
}

func toItineraryResponse(it *ports.Itinerary) itineraryResponse {
	entries := make([]itineraryEntryResponse, len(it.Entries))
	for i, e := range it.Entries {
		entries[i] = itineraryEntryResponse{
			Index:      e.Index,
			FlightDate: e.FlightDate,
			Airline:    e.Airline,
			Tickets:    e.Tickets,
			Cabin:      e.Cabin,
			Confirmed:  e.Confirmed,
			SeatNumber: e.SeatNumber,
			CabinClass: e.CabinClass,
		}
	}
	return itineraryResponse{Username: it.Username, Entries: entries, Text: it.Text}
}
