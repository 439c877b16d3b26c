package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"userdir/internal/config"
	"userdir/internal/handlers"
	"userdir/internal/middleware"
	"userdir/internal/repositories"
	"userdir/internal/services"
	"userdir/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogger(cfg.LogLevel)

	// --- Optional RabbitMQ Client ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = services.NewAMQPEventPublisher(mqClient)

		if err := mqClient.ConsumeUserEvents(logUserEvent); err != nil {
			log.Error().Err(err).Msg("failed to start user event consumer")
		}
	} else {
		log.Info().Msg("RABBITMQ_URL not set, user events are disabled")
	}

	app, err := NewApp(cfg, publisher)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create app")
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.AppPort).Str("storage", cfg.StorageDriver).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}

// NewApp wires storage, services and handlers into a Fiber app.
// publisher may be nil.
func NewApp(cfg config.Config, publisher services.EventPublisher) (*fiber.App, error) {
	storage, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := repositories.NewCollectionUserRepository(storage)
	userService := services.NewUserService(userRepo, publisher)
	userHandler := handlers.NewUserHandler(userService, cfg.ItemsPerPage)

	app := fiber.New(fiber.Config{
		AppName:               "userdir",
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.CORS(cfg.CORSOrigin))

	// --- Routes ---
	userHandler.RegisterRoutes(app)
	app.Get("/health", handlers.HandleHealth(cfg.StorageDriver))

	return app, nil
}

// openStorage builds the Storage selected by cfg.StorageDriver and makes sure
// its backing file or table exists.
func openStorage(cfg config.Config) (repositories.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverJSON:
		storage := repositories.NewJSONFileStorage(afero.NewOsFs(), cfg.UsersDBPath)
		if err := storage.Initialize(); err != nil {
			return nil, err
		}
		log.Info().Str("path", storage.Path()).Msg("using json file storage")
		return storage, nil
	case config.DriverSQLite, config.DriverPostgres:
		var dialector gorm.Dialector
		if cfg.StorageDriver == config.DriverSQLite {
			dialector = sqlite.Open(cfg.DatabaseDSN)
		} else {
			dialector = postgres.Open(cfg.DatabaseDSN)
		}
		db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.StorageDriver, err)
		}
		storage := repositories.NewGORMStorage(db)
		if err := storage.Initialize(); err != nil {
			return nil, err
		}
		return storage, nil
	case config.DriverMemory:
		return repositories.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// logUserEvent is the consumer for the user_events queue.
func logUserEvent(msg amqp.Delivery) error {
	event, err := services.DecodeUserEvent(msg.Body)
	if err != nil {
		return err
	}
	log.Info().
		Str("event", event.Type).
		Int("user_id", event.UserID).
		Str("message_id", msg.MessageId).
		Time("occurred_at", event.OccurredAt).
		Msg("received user event")
	return nil
}
