package main

// @title Adygyes Guide API
// @version 1.0.0
// @description Сервис путеводителя по достопримечательностям Адыгеи. Хранилище достопримечательностей поверх встроенной SQLite с реактивными выборками, сессия экрана карты с поиском, фильтрами по категориям и управлением камерой.
// @description
// @description Основные возможности:
// @description - Каталог достопримечательностей с поиском и фильтрацией по категориям
// @description - Реактивная сессия экрана карты с выбором маркеров и камерой
// @description - Центрирование на местоположении пользователя
// @description - Одноразовое наполнение хранилища комплектным набором данных

// @contact.name API Support
// @contact.email support@adygyes-guide.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/adygyes-guide/docs"
	"github.com/adygyes-guide/internal/config"
	httpDelivery "github.com/adygyes-guide/internal/delivery/http"
	"github.com/adygyes-guide/internal/delivery/http/handler"
	"github.com/adygyes-guide/internal/domain"
	"github.com/adygyes-guide/internal/infrastructure/device"
	"github.com/adygyes-guide/internal/pkg/logger"
	"github.com/adygyes-guide/internal/repository/sqlite"
	"github.com/adygyes-guide/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Adygyes Guide")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_path", cfg.Database.Path),
	)

	// 3. Open SQLite database
	db, err := sqlite.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open SQLite database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close SQLite database", zap.Error(err))
		}
	}()
	log.Info("SQLite database opened")

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("SQLite health check failed", zap.Error(err))
	}

	log.Info("Database healthy")

	// 5. Initialize Repositories
	store := sqlite.NewAttractionStore(db)
	attractionRepo := sqlite.NewAttractionRepository(store, log)
	locationRepo := device.NewLocator(cfg.Location, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	bootstrapUC := usecase.NewBootstrapUseCase(attractionRepo, cfg.Dataset.Path, log)

	attractionUC := usecase.NewAttractionUseCase(attractionRepo, log)

	session := usecase.NewMapSession(
		attractionRepo,
		locationRepo,
		bootstrapUC,
		usecase.SessionConfig{
			DefaultCenter: domain.Location{
				Latitude:  cfg.Map.DefaultLat,
				Longitude: cfg.Map.DefaultLon,
			},
			DefaultZoom: cfg.Map.DefaultZoom,
			MaxZoom:     cfg.Map.MaxZoom,
		},
		log,
	)
	defer session.Close()

	// Посев набора данных и первая подписка на список
	session.Open(ctx)

	log.Info("Use cases initialized", zap.String("session_id", session.ID().String()))

	// 7. Initialize HTTP Handlers
	attractionHandler := handler.NewAttractionHandler(attractionUC, log)
	mapHandler := handler.NewMapHandler(session, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, attractionHandler, mapHandler)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Close map session: отписка от потоков и рассылка подписчикам
	session.Close()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
