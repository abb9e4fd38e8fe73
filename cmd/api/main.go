package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/auth"
	natsbroker "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/eventbroker/nats"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi"
	authv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/auth"
	eventv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/event"
	guestv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/guest"
	mediav1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/media"
	reminderv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/reminder"
	sectionv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/section"
	settingv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/setting"
	wishv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/wish"
	mediaadapter "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/media"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/metrics"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/ratelimit/redis"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository/postgres"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/storage/minio"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
	authservice "github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/cleanup"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/compressor"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/event"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/gate"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/guest"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/media"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/reminder"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/section"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/setting"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/wish"

	"golang.org/x/crypto/bcrypt"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage, uploads answer 500 until it is reachable
	var store port.ObjectStore
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio, uploads are disabled", "error", err)
	} else {
		store = minioAdapter
	}

	//media pipeline
	var runner port.TranscodeRunner
	ffmpeg, err := mediaadapter.NewFFmpegRunner(cfg.Upload.FFmpegPath, logger)
	if err == nil {
		err = ffmpeg.CheckAvailable(ctx)
	}
	if err != nil {
		logger.Warn("ffmpeg unavailable, videos will be stored uncompressed", "error", err)
		runner = mediaadapter.UnavailableRunner{Err: err}
	} else {
		runner = ffmpeg
	}

	transcodeGate := gate.New(cfg.Upload.TranscodeSlots)
	pipelineMetrics, err := metrics.NewPrometheusMetrics(transcodeGate)
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	//broker
	publisher, err := natsbroker.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	//rate limiting is optional
	var limiter port.RateLimiter
	if cfg.RateLimit.RedisAddr != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RateLimit)
		if err != nil {
			logger.Error("failed to init redis, rate limiting is disabled", "error", err)
		} else {
			defer redisClient.Close()
			limiter = redis.NewTokenBucketLimiter(redisClient, cfg.RateLimit)
		}
	}

	//auth
	tokenIssuer, err := auth.NewJWTIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error("failed to init token issuer", "error", err)
		os.Exit(1)
	}

	//repositories
	mediaRepo := postgres.NewSqlMediaRepository(db)
	guestRepo := postgres.NewSqlGuestRepository(db)
	wishRepo := postgres.NewSqlWishRepository(db)
	reminderRepo := postgres.NewSqlReminderRepository(db)
	eventRepo := postgres.NewSqlEventRepository(db)
	adminRepo := postgres.NewSqlAdminRepository(db)
	unitOfWork := postgres.NewUnitOfWork(db)

	//services
	guestService := guest.NewGuestService(guestRepo)
	mediaCompressor := compressor.NewMediaCompressor(mediaadapter.NewJPEGEncoder(), runner, transcodeGate, pipelineMetrics, cfg.Upload, logger)
	mediaService := media.NewMediaService(mediaRepo, store, mediaCompressor, guestService, pipelineMetrics, logger)
	wishService := wish.NewWishService(wishRepo, mediaRepo)
	reminderService := reminder.NewReminderService(reminderRepo)
	eventService := event.NewEventService(eventRepo, publisher, logger)
	sectionService := section.NewSectionService(unitOfWork)
	settingService := setting.NewSettingService(unitOfWork)
	authService := authservice.NewAuthService(adminRepo, tokenIssuer, auth.NewBcryptHasher(bcrypt.DefaultCost), cfg.Auth)
	cleanupService := cleanup.NewCleanupService(cfg.Upload.TempDir, logger)

	//http
	handlers := chi.Handlers{
		Media:    mediav1.NewMediaHandlerV1(mediaService, cfg.Upload, logger),
		Guest:    guestv1.NewGuestHandlerV1(guestService, logger),
		Wish:     wishv1.NewWishHandlerV1(wishService, logger),
		Reminder: reminderv1.NewReminderHandlerV1(reminderService, logger),
		Event:    eventv1.NewEventHandlerV1(eventService, logger),
		Section:  sectionv1.NewSectionHandlerV1(sectionService, logger),
		Setting:  settingv1.NewSettingHandlerV1(settingService, logger),
		Auth:     authv1.NewAuthHandlerV1(authService, logger),
	}

	router := chi.NewRouter(logger, handlers, chi.RouterConfig{
		Env:            cfg.Env.Env,
		AuthService:    authService,
		Limiter:        limiter,
		Metrics:        pipelineMetrics.Handler(),
		RequestTimeout: cfg.Server.RequestTimeout,
		JSONBodyLimit:  cfg.Server.JSONBodyLimit,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init temp file sweeper
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload.CleanupEvery, cfg.Upload.TempFileTTL, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every, "ttl", ttl)

	for {
		select {
		case <-ticker.C:
			removed, err := service.CleanupStaleTempFiles(ctx, time.Now().Add(-ttl))
			if err != nil {
				logger.Error("failed to cleanup stale temp files", "error", err)
			} else {
				logger.Info("cleanup task completed", "removed", removed)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
