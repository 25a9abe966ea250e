package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/voyagekit/flight-booking/internal/api/handler"
	"github.com/voyagekit/flight-booking/internal/api/middleware"
	"github.com/voyagekit/flight-booking/internal/core/ports"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Accounts  ports.AccountService
	Bookings  ports.BookingService
	Sessions  ports.SessionStore
	Redis     *redis.Client
	JWTSecret string
	DataFiles []string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Sessions)

	accountHandler := handler.NewAccountHandler(deps.Accounts)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)

	// --- Auth routes ---
	e.POST("/v1/auth/register", accountHandler.Register)
	e.POST("/v1/auth/login", accountHandler.Login)
	e.POST("/v1/auth/logout", accountHandler.Logout, authMiddleware)

	// --- Session-scoped account routes ---
	account := e.Group("/v1/account", authMiddleware)
	account.PUT("/password", accountHandler.ChangePassword)
	account.POST("/tier/toggle", accountHandler.ToggleTier)
	account.GET("/itinerary", bookingHandler.Itinerary)
	account.PUT("/reservations/:index/confirmation", bookingHandler.Confirm)

	// Booking never required a session; any registered username may be
	// booked for.
	e.POST("/v1/reservations", bookingHandler.Book)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.DataFiles...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
