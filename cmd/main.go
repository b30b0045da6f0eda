package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TanakaTsuyoshi-10/step4backend/config"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/cache"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/delivery"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/repository"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/usecase"
	"github.com/TanakaTsuyoshi-10/step4backend/pkg/db"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Tanaka POS API...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if err := repository.EnsureSchema(context.Background(), database, logger); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}

	// --- Product Cache (optional) ---
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
	}
	productCache := cache.NewProductCache(rdb, cfg.ProductCacheTTL, logger)

	// --- Dependency Injection ---
	productRepo := repository.NewPostgresProductRepository(database, logger)
	tradeRepo := repository.NewPostgresTradeRepository(database, logger)
	logger.Info("Repositories initialized.")

	productUseCase := usecase.NewProductUseCase(productRepo, productCache, logger)
	tradeUseCase := usecase.NewTradeUseCase(tradeRepo, productRepo, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	tradeHandler := delivery.NewTradeHandler(tradeUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(delivery.RequestLogger(logger))
	router.Use(delivery.Recovery(logger))
	router.Use(delivery.CORS(cfg.AllowedOrigins()))

	// Route Registration
	delivery.RegisterSystemRoutes(router)

	api := router.Group("/api/v1")
	productHandler.RegisterRoutes(api)
	tradeHandler.RegisterRoutes(api)
	logger.Info("API Routes registered.")

	// --- Start Server ---
	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server on %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down Tanaka POS API...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shut down: %v", err)
	}
	logger.Info("Server stopped.")
}
