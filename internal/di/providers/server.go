package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/inkmatch/inkmatch-server/internal/api"
	"github.com/inkmatch/inkmatch-server/internal/auth"
	"github.com/inkmatch/inkmatch-server/internal/config"
	"github.com/inkmatch/inkmatch-server/internal/logger"
	"github.com/inkmatch/inkmatch-server/internal/ratelimit"
	"github.com/inkmatch/inkmatch-server/internal/service"
)

// LikeLimiterHandle wraps the keyed rate limiter with shutdown capability.
type LikeLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *LikeLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideLikeLimiter provides the per-viewer toggle rate limiter.
func ProvideLikeLimiter(i do.Injector) (*LikeLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	limiter := ratelimit.New(cfg.RateLimit.TogglesPerSecond, cfg.RateLimit.ToggleBurst)
	return &LikeLimiterHandle{KeyedRateLimiter: limiter}, nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchHandle := do.MustInvoke[*SearchIndexHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	limiterHandle := do.MustInvoke[*LikeLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Artist:    do.MustInvoke[*service.ArtistService](i),
		Tattoo:    do.MustInvoke[*service.TattooService](i),
		Like:      do.MustInvoke[*service.LikeService](i),
		Recommend: do.MustInvoke[*service.RecommendationService](i),
	}

	handler := api.NewServer(api.Options{
		Store:          storeHandle.Store,
		Services:       services,
		Search:         searchHandle.Index,
		Tokens:         tokens,
		LikeLimiter:    limiterHandle.KeyedRateLimiter,
		Logger:         log.Logger,
		Name:           cfg.Server.Name,
		RecommendLimit: cfg.Recommend.DefaultLimit,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
