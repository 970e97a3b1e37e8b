//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"perfumefinder/internal"
	"perfumefinder/internal/alerts"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/controllers"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"
	"perfumefinder/internal/storage"
	"perfumefinder/internal/structures"
	"perfumefinder/internal/trust"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewBlobStore,
		catalogue.NewSource,
		trust.NewScorer,
		services.NewCatalogueService,
		services.NewUserStateService,
		alerts.NewScheduler,
		controllers.NewCatalogueController,
		controllers.NewUserController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
