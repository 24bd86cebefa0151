package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/playlist-service/internal/api/http"
	"github.com/spec-kit/playlist-service/internal/api/http/handlers"
	"github.com/spec-kit/playlist-service/internal/auth"
	"github.com/spec-kit/playlist-service/internal/config"
	"github.com/spec-kit/playlist-service/internal/events"
	"github.com/spec-kit/playlist-service/internal/observability"
	"github.com/spec-kit/playlist-service/internal/persistence"
	"github.com/spec-kit/playlist-service/internal/repository"
	"github.com/spec-kit/playlist-service/internal/service"
	"github.com/spec-kit/playlist-service/internal/spotify"
	"github.com/spec-kit/playlist-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	activityService := service.NewActivityService(dispatcher, logger, metrics)
	worker.StartActivityWorker(activityService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager)

	accountService := service.NewAccountService(cfg.Auth, userRepo, tokenManager)
	playlistService := service.NewPlaylistService(playlistRepo, dispatcher)

	spotifyHTTP := &http.Client{Timeout: cfg.Spotify.HTTPTimeout()}
	tokenCache := spotify.NewTokenCache(cfg.Spotify, spotifyHTTP, redis.ClientHandle(), logger)
	catalog := spotify.NewClient(cfg.Spotify, spotifyHTTP, tokenCache)
	searchService := service.NewSearchService(catalog, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Playlists:      handlers.NewPlaylistsHandler(playlistService),
		Search:         handlers.NewSearchHandler(searchService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
