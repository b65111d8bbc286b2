package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"library/internal/cache"
	"library/internal/config"
	"library/internal/database"
	"library/internal/handlers"
	"library/internal/repositories"
	"library/internal/services"
	"library/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Fiber *fiber.App

	cfg   *config.Config
	db    *gorm.DB
	store cache.Store
	mq    *rabbitmq.Client
}

// NewApp opens the database, the cache and, when configured, the event
// broker, and wires them into a Fiber app.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := cache.New(ctx, cfg)
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	a := &App{cfg: cfg, db: db, store: store}

	// Events are optional: a missing broker only disables publishing.
	var pub services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.DefaultConfig(cfg.RabbitMQURL))
		if err != nil {
			log.Printf("Warning: events disabled: %v", err)
		} else {
			a.mq = mq
			pub = mq
		}
	}

	bookService := services.NewBookService(repositories.NewGORMBookRepository(db), pub)
	userService := services.NewUserService(repositories.NewGORMUserRepository(db), store, cfg.CacheTTL, pub)
	borrowService := services.NewBorrowService(repositories.NewGORMBorrowRepository(db), pub)

	app := fiber.New(fiber.Config{
		AppName:      "library",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	api := app.Group("/api")
	handlers.NewUserHandler(userService).RegisterRoutes(api)
	handlers.NewBookHandler(bookService).RegisterRoutes(api)
	handlers.NewBorrowHandler(borrowService).RegisterRoutes(api)

	app.Get("/health", a.handleHealth)

	a.Fiber = app
	return a, nil
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := database.Ping(ctx, a.db); err != nil {
		log.Printf("Health check: database ping failed: %v", err)
		dbStatus = "down"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": dbStatus,
		"cache":    a.cfg.CacheDriver,
		"events":   a.mq != nil,
	})
}

// StartConsumer logs every library event when a broker is connected.
func (a *App) StartConsumer() error {
	if a.mq == nil {
		return nil
	}
	return a.mq.ConsumeEvents(rabbitmq.LogEvent)
}

// Close stops the server and releases the broker, cache and database.
func (a *App) Close() error {
	var errs []error
	if a.Fiber != nil {
		if err := a.Fiber.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
		}
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if closer, ok := a.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache close: %w", err))
		}
	}
	if err := database.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}
	return errors.Join(errs...)
}
