package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/coffee-storefront-service/config"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/broker"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/cache"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/database/postgres"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/i18n"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/middleware"
	"github.com/fekuna/coffee-storefront-service/internal/server"

	prodH "github.com/fekuna/coffee-storefront-service/internal/product/handler"
	prodListenerPkg "github.com/fekuna/coffee-storefront-service/internal/product/listener"
	prodRepoPkg "github.com/fekuna/coffee-storefront-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/coffee-storefront-service/internal/product/usecase"

	propH "github.com/fekuna/coffee-storefront-service/internal/property/handler"
	propRepoPkg "github.com/fekuna/coffee-storefront-service/internal/property/repository"
	propUCPkg "github.com/fekuna/coffee-storefront-service/internal/property/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func withColon(port string) string {
	if !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	translator, err := i18n.New()
	if err != nil {
		log.Fatalf("failed to load embedded locales: %v", err)
	}
	for _, file := range cfg.I18n.LocaleFiles {
		if err := translator.Load(file); err != nil {
			log.Printf("Failed to load locale file %s: %v", file, err)
		}
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	prodRepo := prodRepoPkg.NewPGRepository(db)
	propRepo := propRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka
	kafkaCfg := &broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	}
	kafkaConsumer := broker.NewConsumer(kafkaCfg)
	defer kafkaConsumer.Close()
	kafkaProducer := broker.NewProducer(kafkaCfg)
	defer kafkaProducer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize UseCases
	ttl := time.Duration(cfg.Cache.ProductTTLSeconds) * time.Second
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, kafkaProducer, ttl, appLogger)
	propUC := propUCPkg.NewPropertyUseCase(propRepo, prodUC, redisClient, kafkaProducer, appLogger)

	// 6.5 Initialize Listeners
	catalogListener := prodListenerPkg.NewCatalogListener(kafkaConsumer, prodUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go catalogListener.Start(ctx)

	// 7. Initialize Handlers
	presenter := prodH.NewPresenter(translator)
	pricingHandler := prodH.NewPricingHandler(prodUC, presenter, appLogger)
	prodHTTP := prodH.NewHTTPHandler(prodUC, presenter, appLogger)
	propHTTP := propH.NewHTTPHandler(propUC, appLogger)

	// 8. Start gRPC Server
	grpcPort := withColon(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.UnaryLogger(appLogger)),
	)

	// Register Services
	prodH.RegisterPricingServiceServer(grpcServer, pricingHandler)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(prodH.PricingServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register Reflection
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", grpcPort))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 9. Start HTTP Server
	if cfg.Server.AdminAPIKey == "" {
		appLogger.Warn("ADMIN_API_KEY is empty, admin API disabled")
	}
	httpServer := &http.Server{
		Addr:              withColon(cfg.Server.HTTPPort),
		Handler:           server.NewHTTPRouter(appLogger, cfg.Server.AdminAPIKey, prodHTTP, propHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
