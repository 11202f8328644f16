package fx

import (
	"go.uber.org/fx"

	"github.com/sp3dr4/wren/config"
	"github.com/sp3dr4/wren/internal/application"
)

// ConfigModule provides configuration-related dependencies.
var ConfigModule = fx.Module("config",
	fx.Provide(config.Load),
)

// InfrastructureModule provides the store, identifier provider and cache.
var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideStore),
	fx.Provide(ProvideMappingWriter),
	fx.Provide(ProvideMappingReader),
	fx.Provide(ProvideIDProvider),
	fx.Provide(ProvideRedisClient),
	fx.Provide(ProvideCache),
	fx.Provide(ProvideCacheTTL),
)

// ApplicationModule provides the two use-case operations.
var ApplicationModule = fx.Module("application",
	fx.Provide(application.NewCreateShortURL),
	fx.Provide(application.NewGetFullURL),
)

// MetricsModule provides metrics-related dependencies.
var MetricsModule = fx.Module("metrics",
	fx.Provide(ProvideMetricsRegistry),
)

// CoreLifecycleModule provides lifecycle management shared by all
// entrypoints.
var CoreLifecycleModule = fx.Module("core-lifecycle",
	fx.Invoke(RegisterCacheHooks),
)

// CoreModules combines the modules shared by all entrypoints.
var CoreModules = fx.Options(
	ConfigModule,
	InfrastructureModule,
	ApplicationModule,
	MetricsModule,
	CoreLifecycleModule,
)
