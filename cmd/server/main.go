package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/YarenOpuz/smart-stock/docs"
	"github.com/YarenOpuz/smart-stock/internal/product/cache"
	producthttp "github.com/YarenOpuz/smart-stock/internal/product/delivery/http"
	productrepo "github.com/YarenOpuz/smart-stock/internal/product/repository"
	productcommand "github.com/YarenOpuz/smart-stock/internal/product/usecase/command"
	userhttp "github.com/YarenOpuz/smart-stock/internal/user/delivery/http"
	userrepo "github.com/YarenOpuz/smart-stock/internal/user/repository"
	usercommand "github.com/YarenOpuz/smart-stock/internal/user/usecase/command"
	warehousehttp "github.com/YarenOpuz/smart-stock/internal/warehouse/delivery/http"
	warehouserepo "github.com/YarenOpuz/smart-stock/internal/warehouse/repository"
	"github.com/YarenOpuz/smart-stock/kafka"
	"github.com/YarenOpuz/smart-stock/pkg/config"
	"github.com/YarenOpuz/smart-stock/pkg/database"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
	"github.com/YarenOpuz/smart-stock/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "smart-stock")
	logger.Init(serviceName, cfg.IsDevelopment())

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", logLevel).
		Msg("Starting smart-stock service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories and run migrations
	userRepo := userrepo.NewGormUserRepository(db)
	warehouseRepo := warehouserepo.NewGormWarehouseRepository(db)
	productRepo := productrepo.NewGormProductRepositoryWithTracing(db)

	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}
	if err := warehouseRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run warehouse migrations")
	}
	if err := productRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run product migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional: without brokers the service runs without events
	var userEvents usercommand.EventPublisher
	var productEvents productcommand.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Strs("brokers", cfg.KafkaBrokers).
				Msg("Failed to connect to Kafka - events will not be published")
		} else {
			defer publisher.Close()
			userEvents = publisher
			productEvents = publisher
		}
	}

	// Redis cache is optional: without it product reads always hit the database
	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("redis_addr", cfg.RedisAddr).
				Msg("Failed to connect to Redis - product caching disabled")
		} else {
			defer redisClient.Close()
			productCache = cache.NewProductCache(redisClient)
			logger.Logger.Info().
				Str("redis_addr", cfg.RedisAddr).
				Msg("Connected to Redis for product caching")
		}
	}

	// Initialize HTTP handlers
	userHandler := userhttp.NewUserHandler(userRepo, userEvents, cfg.TokenDuration)
	warehouseHandler := warehousehttp.NewWarehouseHandler(warehouseRepo, userRepo)
	productHandler := producthttp.NewProductHandler(productRepo, warehouseRepo, productEvents, productCache)

	// Setup router
	router := mux.NewRouter().StrictSlash(true)

	// Authenticated routes share the same bearer token middleware
	authMW := userhttp.AuthMiddleware(userRepo)

	userHandler.RegisterRoutes(router, authMW)
	warehouseHandler.RegisterRoutes(router, authMW)
	productHandler.RegisterRoutes(router, authMW)

	// Health check endpoint
	userHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	userhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Welcome endpoint
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Welcome to Smart Stock API"}`))
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Wrap with OpenTelemetry instrumentation
	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
