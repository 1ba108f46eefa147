package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/config"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
	"github.com/fleetcare/backend/internal/infrastructure/logger"
	"github.com/fleetcare/backend/internal/interfaces/http/handler"
	"github.com/fleetcare/backend/internal/interfaces/http/middleware"
	"github.com/fleetcare/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting fleet backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize the key-value store
	store, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing store", zap.Error(err))
		}
	}()

	// Application services
	projectorService := fleetapp.NewProjectorService(store)
	maintenanceService := fleetapp.NewMaintenanceService(store)
	rmaService := fleetapp.NewRMAService(store)
	sparePartService := fleetapp.NewSparePartService(store)
	analyticsService := fleetapp.NewAnalyticsService(store)
	searchService := fleetapp.NewSearchService(store)
	adminService := fleetapp.NewAdminService(store, analyticsService)

	// Gin mode follows the environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORS(corsConfig))

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(adminService, cfg.App.Version))
	r.Register(handler.NewProjectorHandler(projectorService))
	r.Register(handler.NewServiceHandler(maintenanceService))
	r.Register(handler.NewRMAHandler(rmaService))
	r.Register(handler.NewSparePartHandler(sparePartService))
	r.Register(handler.NewAnalyticsHandler(analyticsService))
	r.Register(handler.NewSearchHandler(searchService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newStore builds the configured store backend. Redis is the production
// engine; the in-memory store keeps single-binary development working
// without external services.
func newStore(cfg *config.Config, log *zap.Logger) (kvstore.Store, error) {
	if !cfg.Redis.Enabled {
		log.Warn("Redis disabled, using in-memory store; data will not survive restarts")
		return kvstore.NewMemoryStore(), nil
	}
	store, err := kvstore.NewRedisStore(kvstore.RedisConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	log.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr()))
	return store, nil
}
