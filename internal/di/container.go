// Package di provides dependency injection configuration for the InkMatch server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/inkmatch/inkmatch-server/internal/auth"
	"github.com/inkmatch/inkmatch-server/internal/config"
	"github.com/inkmatch/inkmatch-server/internal/di/providers"
	"github.com/inkmatch/inkmatch-server/internal/logger"
	"github.com/inkmatch/inkmatch-server/internal/search"
	"github.com/inkmatch/inkmatch-server/internal/service"
	"github.com/inkmatch/inkmatch-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchIndexer)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideOwnershipGuard)
	do.Provide(injector, providers.ProvideArtistService)
	do.Provide(injector, providers.ProvideTattooService)
	do.Provide(injector, providers.ProvideLikeService)
	do.Provide(injector, providers.ProvideRecommendationService)

	// Server
	do.Provide(injector, providers.ProvideLikeLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*search.Indexer](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*service.OwnershipGuard](injector)
	_ = do.MustInvoke[*service.ArtistService](injector)
	_ = do.MustInvoke[*service.TattooService](injector)
	_ = do.MustInvoke[*service.LikeService](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)

	// Server
	_ = do.MustInvoke[*providers.LikeLimiterHandle](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Rebuild the search index if it lags behind the catalog
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
