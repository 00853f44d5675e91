package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/handler"
	"github.com/expofair/exhibitor-portal/internal/api/middleware"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
	"github.com/expofair/exhibitor-portal/internal/core/service"
	"github.com/expofair/exhibitor-portal/internal/infrastructure/config"
	sessionredis "github.com/expofair/exhibitor-portal/internal/infrastructure/db/redis"
	"github.com/expofair/exhibitor-portal/internal/infrastructure/gateway"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	gw := gateway.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	store := sessionredis.NewSessionStore(rdb, cfg.SessionTTL)

	sessions := service.NewSessionService(gw, store, log)
	catalog := service.NewCatalogService(gw, log)
	browsers := service.NewBrowsers(catalog, cfg.SessionTTL, log)
	bookings := service.NewBookingService(gw)
	directory := service.NewDirectoryService(gw, log)
	content := service.NewContentService(gw, log)
	profile := service.NewProfileService(gw, gw, log)

	authHandler := handler.NewAuthHandler(sessions, browsers)
	catalogHandler := handler.NewCatalogHandler(catalog)
	browserHandler := handler.NewBrowserHandler(browsers)
	bookingHandler := handler.NewBookingHandler(bookings)
	directoryHandler := handler.NewDirectoryHandler(directory)
	contentHandler := handler.NewContentHandler(content)
	profileHandler := handler.NewProfileHandler(profile, sessions)

	guard := middleware.Guard(sessions)
	exhibitorOnly := middleware.RequireRole(string(domain.RoleExhibitor))

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", guard)

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)

	v1.GET("/events", catalogHandler.Events)
	v1.GET("/events/:id/stalls", catalogHandler.Stalls)
	v1.POST("/events/:event_id/stalls/:stall_id/apply", catalogHandler.Apply, exhibitorOnly)

	// Stateful catalog screen: one browser per session.
	v1.GET("/catalog", browserHandler.State)
	v1.POST("/catalog/events", browserHandler.LoadEvents)
	v1.POST("/catalog/select", browserHandler.Select)
	v1.POST("/catalog/search", browserHandler.Search)
	v1.POST("/catalog/category", browserHandler.Category)
	v1.POST("/catalog/stalls/:stall_id/apply", browserHandler.Apply, exhibitorOnly)

	v1.GET("/bookings", bookingHandler.History)

	v1.GET("/exhibitors", directoryHandler.Exhibitors)
	v1.GET("/visitors", directoryHandler.Visitors)
	v1.GET("/leads", directoryHandler.Leads)
	v1.POST("/leads", directoryHandler.Capture)

	mgmt := v1.Group("", exhibitorOnly)
	mgmt.GET("/products", contentHandler.List(ports.KindProduct))
	mgmt.POST("/products", contentHandler.Upsert(ports.KindProduct))
	mgmt.DELETE("/products/:id", contentHandler.Delete(ports.KindProduct))
	mgmt.GET("/services", contentHandler.List(ports.KindService))
	mgmt.POST("/services", contentHandler.Upsert(ports.KindService))
	mgmt.DELETE("/services/:id", contentHandler.Delete(ports.KindService))
	mgmt.GET("/gallery", contentHandler.List(ports.KindGallery))
	mgmt.POST("/gallery", contentHandler.UploadGalleryImage)
	mgmt.DELETE("/gallery/:id", contentHandler.Delete(ports.KindGallery))

	v1.PUT("/profile", profileHandler.Update)
	v1.POST("/profile/password", profileHandler.ChangePassword)

	return e
}
