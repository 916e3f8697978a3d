package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/florarium-backend/internal/config"
	"github.com/heartmarshall/florarium-backend/internal/transport/middleware"
)

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Health  *HealthHandler
	Devices *DeviceHandler
	Garden  *GardenHandler
	Events  http.Handler
	Metrics http.Handler

	Auth      middleware.Middleware
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler of the server.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	limited := d.Limiter != nil && d.RateLimit.Enabled
	mux.Handle("POST /api/v1/devices", middleware.Chain(
		middleware.If(limited, func() middleware.Middleware { return d.Limiter.Limit("devices", d.RateLimit.DevicePerMinute) }),
	)(http.HandlerFunc(d.Devices.Register)))

	authed := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireDevice(h))
	}

	g := d.Garden
	authed("GET /api/v1/garden", g.State)
	authed("POST /api/v1/schedule/check", g.CheckSchedule)
	authed("POST /api/v1/flowers/reveal", g.Reveal)
	authed("POST /api/v1/flowers/generate", g.Generate)

	authed("GET /api/v1/flowers", g.ListFlowers)
	authed("GET /api/v1/flowers/{id}", g.GetFlower)
	authed("GET /api/v1/flowers/{id}/image", g.FlowerImage)
	authed("DELETE /api/v1/flowers/{id}", g.DiscardFlower)
	authed("POST /api/v1/flowers/{id}/favorite", g.ToggleFavorite)
	authed("POST /api/v1/flowers/{id}/details", g.GenerateDetails)
	authed("PUT /api/v1/flowers/{id}/details", g.UpdateDetails)
	authed("GET /api/v1/favorites", g.ListFavorites)
	authed("DELETE /api/v1/favorites/{id}", g.DeleteFavorite)

	authed("POST /api/v1/flowers/{id}/gift", g.PrepareGift)
	authed("POST /api/v1/gifts/{id}/confirm", g.ConfirmGift)
	authed("POST /api/v1/gifts/{id}/cancel", g.CancelGift)
	authed("POST /api/v1/gifts/import", g.ImportGift)

	authed("GET /api/v1/herbarium", g.Herbarium)
	authed("PUT /api/v1/herbarium/{name}", g.AddToHerbarium)
	authed("DELETE /api/v1/herbarium/{name}", g.RemoveFromHerbarium)
	authed("GET /api/v1/species", g.SearchSpecies)
	authed("GET /api/v1/stats", g.Stats)

	authed("GET /api/v1/backup", g.ExportBackup)
	authed("POST /api/v1/backup/restore", g.RestoreBackup)
	authed("GET /api/v1/sync", g.SyncStatus)
	authed("POST /api/v1/sync", g.SyncNow)
	authed("DELETE /api/v1/sync", g.DeleteRemote)
	authed("POST /api/v1/profile/reset", g.ResetProfile)

	if d.Events != nil {
		mux.Handle("GET /api/v1/events", middleware.RequireDevice(d.Events))
	}

	// Metrics stays innermost so it sees the matched route pattern.
	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
		middleware.If(limited, func() middleware.Middleware { return d.Limiter.Limit("api", d.RateLimit.PerMinute) }),
		d.Auth,
		middleware.Logger(d.Logger),
		middleware.Metrics(),
	)(mux)
}
