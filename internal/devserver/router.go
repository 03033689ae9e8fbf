// Package devserver assembles the local development backend: the remote API
// the storefront client consumes, served from one process against MongoDB
// and Redis.
package devserver

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gadgetstore/storefront/docs"
	"github.com/gadgetstore/storefront/internal/devserver/handler"
	"github.com/gadgetstore/storefront/internal/devserver/middleware"
	"github.com/gadgetstore/storefront/internal/devserver/service"
	"github.com/gadgetstore/storefront/internal/infrastructure/config"
	devmongo "github.com/gadgetstore/storefront/internal/infrastructure/db/mongo"
	devredis "github.com/gadgetstore/storefront/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := devmongo.NewUserRepository(db)
	productRepo := devmongo.NewProductRepository(db)
	throttle := devredis.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, 24*time.Hour, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, cfg.PublicBaseURL, log)

	authed := middleware.Auth(cfg.JWTSecret)
	manager := middleware.RequireProductManager()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Product routes ---
	products := e.Group("/products", authed)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, manager)
	products.PUT("/:id", productHandler.Update, manager)
	products.DELETE("/:id", productHandler.Delete, manager)
	products.POST("/upload-image", uploadHandler.Upload, manager)

	// Uploaded images are served straight from disk.
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
