package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playlist-service/internal/api/http/handlers"
	"github.com/spec-kit/playlist-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Playlists      *handlers.PlaylistsHandler
	Search         *handlers.SearchHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Register and login stay open; everything
// else under /api passes through the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/register", cfg.Accounts.Register)
	api.Post("/login", cfg.Accounts.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/playlists", cfg.Playlists.List)
	protected.Post("/playlists", cfg.Playlists.Create)
	protected.Put("/playlists/:id", cfg.Playlists.Update)
	protected.Delete("/playlists/:id", cfg.Playlists.Delete)
	protected.Post("/playlists/:id/songs", cfg.Playlists.AddSong)
	protected.Get("/spotify/search", cfg.Search.Search)
}
