package providers

import (
	"github.com/samber/do/v2"

	"github.com/inkmatch/inkmatch-server/internal/logger"
	"github.com/inkmatch/inkmatch-server/internal/service"
	"github.com/inkmatch/inkmatch-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideOwnershipGuard provides the tattoo ownership guard.
func ProvideOwnershipGuard(i do.Injector) (*service.OwnershipGuard, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return service.NewOwnershipGuard(storeHandle.Store), nil
}

// ProvideArtistService provides the artist profile service.
func ProvideArtistService(i do.Injector) (*service.ArtistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewArtistService(storeHandle.Store, v, log.Logger), nil
}

// ProvideTattooService provides the tattoo catalog service.
func ProvideTattooService(i do.Injector) (*service.TattooService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	guard := do.MustInvoke[*service.OwnershipGuard](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTattooService(storeHandle.Store, guard, v, log.Logger), nil
}

// ProvideLikeService provides the viewer like ledger service.
func ProvideLikeService(i do.Injector) (*service.LikeService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLikeService(storeHandle.Store, log.Logger), nil
}

// ProvideRecommendationService provides the artist ranking service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendationService(storeHandle.Store, log.Logger), nil
}
