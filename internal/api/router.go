package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hirafic/marketplace-api/docs"
	"github.com/hirafic/marketplace-api/internal/api/handler"
	"github.com/hirafic/marketplace-api/internal/api/middleware"
	"github.com/hirafic/marketplace-api/internal/core/domain"
	"github.com/hirafic/marketplace-api/internal/core/ports"
	"github.com/hirafic/marketplace-api/internal/core/service"
	mongodb "github.com/hirafic/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hirafic/marketplace-api/internal/infrastructure/db/redis"
	"github.com/hirafic/marketplace-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hirafic"))

	// --- Dependencies ---
	log := logger.Get()
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	artisanRepo := mongodb.NewArtisanRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	dedup := redisdb.NewNotifyDedup(rdb)

	authService := service.NewAuthService(userRepo, clientRepo, artisanRepo, jwtSecret, 24*time.Hour)
	profileService := service.NewProfileService(userRepo, clientRepo, artisanRepo, log)
	bookingService := service.NewBookingService(bookingRepo, clientRepo, artisanRepo, mailer, dedup, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authMW := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes ---
	e.PUT("/profile", profileHandler.Update, authMW)

	// --- Booking routes ---
	e.POST("/book_artisan", bookingHandler.Create, authMW, middleware.RBAC(domain.RoleClient))
	e.PUT("/book_artisan", bookingHandler.Update, authMW, middleware.RBAC(domain.RoleArtisan))
	e.GET("/bookings", bookingHandler.List, authMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
