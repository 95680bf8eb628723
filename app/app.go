package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"wedding-api/config"
	"wedding-api/db"
	"wedding-api/handler"
	"wedding-api/logger"
	"wedding-api/repository"
	"wedding-api/router"
	"wedding-api/service"

	"github.com/redis/go-redis/v9"
)

// App holds the wired application. Tests build it directly with New.
type App struct {
	DB     *sql.DB
	Router http.Handler
	Ledger *service.RevocationLedger
}

// New wires repositories, services and handlers. redisClient may be nil, in
// which case caching and the ledger fast path are disabled.
func New(cfg *config.Config, database *sql.DB, redisClient *redis.Client) *App {
	var cache service.ICacheClient
	if redisClient != nil {
		cache = redisClient
	}
	contentCache := service.NewContentCache(cache, cfg.Cache.TTL)

	// Repositories
	userRepo := repository.NewUserRepository(database)
	revocationRepo := repository.NewRevocationRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	teamRepo := repository.NewTeamRepository(database)
	priceRepo := repository.NewPriceRepository(database)
	newsRepo := repository.NewNewsRepository(database)
	pageRepo := repository.NewPageRepository(database)
	siteRepo := repository.NewSiteRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	// Auth
	codec := service.NewTokenCodec(cfg.JWT)
	ledger := service.NewRevocationLedger(revocationRepo, cache).WithRetention(cfg.Ledger.Retention)
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(0), codec, ledger)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, contentCache)),
		Booking:  handler.NewBookingHandler(service.NewBookingService(bookingRepo, contentCache)),
		Message:  handler.NewMessageHandler(service.NewMessageService(messageRepo)),
		Team:     handler.NewTeamHandler(service.NewTeamService(teamRepo, contentCache)),
		Price:    handler.NewPriceHandler(service.NewPriceService(priceRepo, contentCache)),
		News:     handler.NewNewsHandler(service.NewNewsService(newsRepo, contentCache)),
		Page:     handler.NewPageHandler(service.NewPageService(pageRepo, contentCache)),
		Site:     handler.NewSiteHandler(service.NewSiteService(siteRepo, contentCache)),
		QRCode:   handler.NewQRCodeHandler(service.NewQRCodeService(siteRepo, router.QRImagePath)),
		Stats:    handler.NewStatsHandler(service.NewStatsService(statsRepo, teamRepo, bookingRepo, messageRepo)),
	}
	gate := handler.NewGate(codec, ledger, cfg.Gate)

	return &App{
		DB:     database,
		Router: router.NewRouter(handlers, gate),
		Ledger: ledger,
	}
}

func Run() {
	config.LoadConfig(".")
	cfg := &config.AppConfig
	logger.InitWithLevel(cfg.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = db.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Log.WithError(err).Warn("Redis unavailable, running without cache")
		} else {
			defer redisClient.Close()
		}
	}

	a := New(cfg, database, redisClient)
	go a.Ledger.RunJanitor(ctx, cfg.Ledger.PurgeInterval)

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
