// Package fx is the composition root. It constructs one mapping store and
// one identifier provider and shares them by reference with both use-case
// operations; no package-level state exists anywhere in the service.
package fx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/sp3dr4/wren/config"
	"github.com/sp3dr4/wren/internal/domain"
	cacheImpl "github.com/sp3dr4/wren/internal/infrastructure/cache"
	"github.com/sp3dr4/wren/internal/infrastructure/memory"
	redisCache "github.com/sp3dr4/wren/internal/infrastructure/redis"
	"github.com/sp3dr4/wren/internal/pkg/metrics"
	"github.com/sp3dr4/wren/internal/shortid"
)

// ProvideLogger creates the process logger and installs it as slog default.
func ProvideLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// ProvideStore creates the single in-memory mapping store instance.
func ProvideStore(logger *slog.Logger) *memory.Store {
	logger.Info("Using in-memory mapping store")
	return memory.NewStore()
}

// ProvideMappingWriter narrows the store to its write capability.
func ProvideMappingWriter(store *memory.Store) domain.MappingWriter {
	return store
}

// ProvideMappingReader narrows the store to its read capability.
func ProvideMappingReader(store *memory.Store) domain.MappingReader {
	return store
}

// ProvideIDProvider selects the identifier generation policy from config.
func ProvideIDProvider(cfg *config.Config, logger *slog.Logger) (domain.IDProvider, error) {
	switch cfg.App.IDProvider {
	case "nanoid":
		logger.Info("Using random identifier provider", "length", cfg.App.IDLength)
		return shortid.NewNanoID(cfg.App.IDLength)
	case "sqids":
		logger.Info("Using sequential identifier provider", "min_length", cfg.App.IDLength)
		return shortid.NewSequential(cfg.App.IDLength)
	default:
		return nil, fmt.Errorf("unsupported id provider: %s", cfg.App.IDProvider)
	}
}

// ProvideRedisClient returns a redis client when the redis cache is
// configured, nil otherwise.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Cache.Type != "redis" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
}

// ProvideCache returns the configured look-aside cache.
func ProvideCache(cfg *config.Config, client *redis.Client, logger *slog.Logger) (domain.Cache, error) {
	switch cfg.Cache.Type {
	case "noop", "":
		logger.Info("Caching disabled")
		return cacheImpl.NewNoOp(), nil
	case "redis":
		logger.Info("Using redis cache", "addr", cfg.Cache.Redis.Addr, "ttl", cfg.Cache.TTL)
		return redisCache.NewCache(client, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}

// ProvideCacheTTL exposes the cache TTL for the resolve operation.
func ProvideCacheTTL(cfg *config.Config) time.Duration {
	return cfg.Cache.TTL
}

// ProvideMetricsRegistry returns the prometheus registry, or a no-op one
// when metrics are disabled.
func ProvideMetricsRegistry(cfg *config.Config) (metrics.Registry, error) {
	if !cfg.Metrics.Enabled {
		return metrics.NewNoOpRegistry(), nil
	}
	return metrics.NewPrometheusRegistry(cfg.Metrics)
}

// CacheParams holds the dependencies of the cache lifecycle hooks.
type CacheParams struct {
	fx.In

	Client *redis.Client
	Cache  domain.Cache
	Logger *slog.Logger
}

// RegisterCacheHooks pings the cache backend on start and closes the redis
// client on stop.
func RegisterCacheHooks(lc fx.Lifecycle, params CacheParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Client == nil {
				return nil
			}
			if err := params.Cache.Ping(ctx); err != nil {
				params.Logger.Error("Cache backend unreachable", "error", err)
				return err
			}
			return nil
		},
		OnStop: func(context.Context) error {
			if params.Client == nil {
				return nil
			}
			if err := params.Client.Close(); err != nil {
				params.Logger.Error("Failed to close redis client", "error", err)
				return err
			}
			params.Logger.Info("Redis client closed")
			return nil
		},
	})
}
