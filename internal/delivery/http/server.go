package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/adygyes-guide/internal/config"
	"github.com/adygyes-guide/internal/delivery/http/handler"
	"github.com/adygyes-guide/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	attractionHandler *handler.AttractionHandler
	mapHandler        *handler.MapHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	attractionHandler *handler.AttractionHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Adygyes Guide",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		attractionHandler: attractionHandler,
		mapHandler:        mapHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Attraction catalog routes
	api.Get("/attractions", s.attractionHandler.List)
	api.Get("/attractions/search", s.attractionHandler.Search)
	api.Get("/attractions/offline", s.attractionHandler.OfflineAvailable)
	api.Get("/attractions/category/:tag", s.attractionHandler.ByCategory)
	api.Get("/attractions/:id", s.attractionHandler.GetByID)
	api.Get("/categories", s.attractionHandler.Categories)

	// Map surface routes: state and markers out, user intents in
	mapGroup := api.Group("/map")
	mapGroup.Get("/state", s.mapHandler.State)
	mapGroup.Get("/markers", s.mapHandler.Markers)
	mapGroup.Post("/search", s.mapHandler.Search)
	mapGroup.Post("/select", s.mapHandler.Select)
	mapGroup.Post("/dismiss", s.mapHandler.Dismiss)
	mapGroup.Post("/categories", s.mapHandler.Categories)
	mapGroup.Post("/retry", s.mapHandler.Retry)
	mapGroup.Post("/ready", s.mapHandler.Ready)
	mapGroup.Post("/clear-error", s.mapHandler.ClearError)
	mapGroup.Post("/locate", s.mapHandler.Locate)
	mapGroup.Post("/pan", s.mapHandler.Pan)
	mapGroup.Post("/zoom-in", s.mapHandler.ZoomIn)
	mapGroup.Post("/zoom-out", s.mapHandler.ZoomOut)
	mapGroup.Post("/fit", s.mapHandler.FitVisible)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
