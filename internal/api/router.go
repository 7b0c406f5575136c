package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tpi-backend/e-commerce-api/internal/api/handler"
	"github.com/tpi-backend/e-commerce-api/internal/api/middleware"
	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
	"github.com/tpi-backend/e-commerce-api/internal/core/service"
	"github.com/tpi-backend/e-commerce-api/internal/infrastructure/config"
	"github.com/tpi-backend/e-commerce-api/internal/infrastructure/crypto"
	mongodb "github.com/tpi-backend/e-commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tpi-backend/e-commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	issuer := service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, crypto.NewBcryptHasher(), issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	categoryRepo := redisdb.NewCachedCategoryRepository(mongodb.NewCategoryRepository(db), rdb, 0, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	authenticated := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)

	// --- Category routes (reads public, mutations admin-only) ---
	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authenticated, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authenticated, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authenticated, adminOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
