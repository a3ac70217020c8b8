package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/beautybook/marketplace/docs"
	"github.com/beautybook/marketplace/internal/api/handler"
	"github.com/beautybook/marketplace/internal/api/middleware"
	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Identity ports.IdentityService
	Bookings ports.BookingService
	Catalog  ports.CatalogService
	Payments ports.PaymentService
	Sessions ports.SessionStore
	Queue    handler.SettlementQueue

	// Ready is pinged by /health/ready, keyed by dependency name.
	Ready map[string]handlers.Pinger

	SessionSecret string
	SessionTTL    time.Duration
	// AuthRateLimit is the sustained login/signup rate per session, per second.
	// Session issuance shares the per-address budget.
	AuthRateLimit float64

	// Registry receives the HTTP request metrics; nil means the default registry.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	promCfg := echoprometheus.MiddlewareConfig{Namespace: "marketplace", Subsystem: "http"}
	metricsHandler := echoprometheus.NewHandler()
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Registry})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Operational routes (no session) ---
	health := handlers.NewHealth(d.Ready, 0)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessionHandler := handler.NewSessionHandler(d.Identity, d.SessionSecret, d.SessionTTL)
	authHandler := handler.NewAuthHandler(d.Identity)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	dashboardHandler := handler.NewDashboardHandler(d.Bookings, d.Catalog)
	paymentHandler := handler.NewPaymentHandler(d.Payments, d.Bookings, d.Queue)

	credentialLimit := middleware.AuthRateLimit(d.AuthRateLimit)
	e.POST("/v1/sessions", sessionHandler.Create, credentialLimit)

	v1 := e.Group("/v1", middleware.Auth(d.SessionSecret), middleware.Session(d.Sessions))
	v1.GET("/session", sessionHandler.Get)

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login, credentialLimit)
	auth.POST("/signup", authHandler.Signup, credentialLimit)
	auth.POST("/logout", authHandler.Logout)

	v1.PATCH("/profile", authHandler.UpdateProfile,
		middleware.RBAC(domain.RoleClient, domain.RoleProvider, domain.RoleAdmin))

	// Directory and provider pages are open to anonymous sessions.
	v1.GET("/providers", catalogHandler.List)
	v1.GET("/providers/:id", catalogHandler.Get)
	v1.GET("/services", catalogHandler.Services)
	v1.GET("/services/:serviceName/providers", catalogHandler.ByService)
	v1.GET("/locations", catalogHandler.Locations)
	v1.POST("/providers/:id/bookings", bookingHandler.Book)
	v1.GET("/providers/:id/booking-state", bookingHandler.State)

	clientOnly := middleware.RBAC(domain.RoleClient)
	v1.GET("/dashboard", dashboardHandler.Client, clientOnly)

	payments := v1.Group("/payments", clientOnly)
	payments.POST("", paymentHandler.Start)
	payments.PUT("/:id/phone", paymentHandler.EnterPhone)
	payments.POST("/:id/confirm", paymentHandler.Confirm)
	payments.GET("/:id", paymentHandler.Get)
	payments.POST("/:id/retry", paymentHandler.Retry)
	payments.DELETE("/:id", paymentHandler.Close)

	provider := v1.Group("/provider", middleware.RBAC(domain.RoleProvider))
	provider.GET("/dashboard", dashboardHandler.Provider)
	provider.PUT("/onboarding", dashboardHandler.Onboarding)

	return e
}
