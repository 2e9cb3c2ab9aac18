package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"kolbe-be/internal/cache"
	"kolbe-be/internal/config"
	"kolbe-be/internal/controllers"
	"kolbe-be/internal/database"
	"kolbe-be/internal/jwt"
	"kolbe-be/internal/logger"
	"kolbe-be/internal/menu"
	"kolbe-be/internal/middleware"
	"kolbe-be/internal/password"
	"kolbe-be/internal/repository"
	"kolbe-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(ctx, db, cfg.DBDriver); err != nil {
		return err
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			log.Info("connected to redis cache")
			cacheClient = redisCache
			defer redisCache.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	catalog := menu.Default()

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		password.NewHasher(cfg.BcryptCost),
		jwtService,
		service.NewPendingRegistrations(),
		log,
	)
	favoriteService := service.NewFavoriteService(favoriteRepo, catalog, cacheClient, log)

	router := setupRouter(ctx, cfg, log, routes{
		auth:      controllers.NewAuthController(authService),
		menu:      controllers.NewMenuController(catalog),
		qrcode:    controllers.NewQRCodeController(catalog, cfg.FrontendURL),
		favorites: controllers.NewFavoriteController(favoriteService),
		jwt:       jwtService,
		users:     userRepo,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "addr", srv.Addr, "env", cfg.AppEnv, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type routes struct {
	auth      *controllers.AuthController
	menu      *controllers.MenuController
	qrcode    *controllers.QRCodeController
	favorites *controllers.FavoriteController
	jwt       *jwt.JWTService
	users     middleware.UserLookup
}

func setupRouter(ctx context.Context, cfg *config.Config, log *slog.Logger, h routes) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Rate limiters stop their cleanup loops when ctx ends
	generalRateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Timeout(cfg.RequestTimeout),
	)

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", h.auth.Register)
			auth.POST("/login", h.auth.Login)
		}

		menuRoutes := api.Group("/menu")
		{
			menuRoutes.GET("/items", h.menu.ListItems)
			menuRoutes.GET("/items/:id", h.menu.GetItem)
			menuRoutes.GET("/items/:id/price", h.menu.GetPrice)
			menuRoutes.GET("/items/:id/qrcode", h.qrcode.GenerateQRCode)
		}

		// Protected routes - require JWT authentication
		protected := api.Group("/favorites")
		protected.Use(middleware.AuthMiddleware(h.jwt, h.users))
		{
			protected.POST("", h.favorites.AddFavorite)
			protected.GET("", h.favorites.ListFavorites)
			protected.DELETE("/:id", h.favorites.RemoveFavorite)
		}
	}

	return router
}
