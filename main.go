package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Eursukkul/booking-microservice/directory-service/config"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/cache"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/consumer"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/handler"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/middleware"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/view"
	kv "github.com/Eursukkul/booking-microservice/directory-service/pkg/cache"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/logger"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/rabbitmq"
	"github.com/Eursukkul/booking-microservice/directory-service/web"
)

var searchPaths = map[string]bool{
	"/venues/search":  true,
	"/artists/search": true,
}

func main() {
	cfg := config.Load()

	logFile, err := logger.Init(cfg.IsDevelopment(), cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Warn().Err(err).Msg("error log file disabled")
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg.DSN(), database.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Optional Redis directory cache
	var directoryCache service.DirectoryCache
	healthChecks := map[string]handler.HealthChecker{}
	if cfg.RedisAddr != "" {
		redisClient := kv.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisClient.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, directory cache disabled")
			redisClient.Close()
		} else {
			defer redisClient.Close()
			directoryCache = cache.NewDirectoryCache(redisClient, cfg.CacheTTL)
			healthChecks["redis"] = redisClient
		}
	}

	// Optional RabbitMQ publisher
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, domain events disabled")
		} else {
			defer mqPublisher.Close()
			publisher = mqPublisher
		}
	}

	// Repositories
	tx := database.NewTransactor(db)
	venueRepo := repository.NewVenueRepository()
	artistRepo := repository.NewArtistRepository()
	showRepo := repository.NewShowRepository()

	// Services
	venueSvc := service.NewVenueService(tx, venueRepo, showRepo, directoryCache, publisher)
	artistSvc := service.NewArtistService(tx, artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(tx, showRepo, venueRepo, artistRepo, directoryCache, publisher)

	// Cache warmer: only useful when there is both a cache and a broker
	var consumerDone <-chan struct{}
	if directoryCache != nil && publisher != nil {
		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, consumer.QueueName, consumer.Bindings...)
		if err != nil {
			log.Warn().Err(err).Msg("directory cache warmer disabled")
		} else {
			defer mqConsumer.Close()
			msgs, err := mqConsumer.Consume()
			if err != nil {
				log.Fatal().Err(err).Msg("failed to start consuming")
			}
			consumerDone = consumer.NewDirectoryConsumer(venueSvc).Start(ctx, msgs)
		}
	}

	renderer, err := view.NewRenderer(web.Templates())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}
	metrics := middleware.NewMetrics("directory")

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())
	e.Use(metrics.Middleware())
	e.Use(echoMw.CSRFWithConfig(echoMw.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:csrf_token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodPost && searchPaths[c.Path()]
		},
	}))

	e.GET("/metrics", metrics.Handler())

	handler.NewHealthHandler("directory-service", healthChecks).RegisterRoutes(e)

	flash := handler.NewFlash(cfg.CookieSecure)
	handler.NewHomeHandler(flash).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc, flash).RegisterRoutes(e)
	handler.NewArtistHandler(artistSvc, flash).RegisterRoutes(e)
	handler.NewShowHandler(showSvc, flash).RegisterRoutes(e)

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("directory service starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if consumerDone != nil {
		<-consumerDone
	}
}
