package fx

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sp3dr4/wren/config"
	"github.com/sp3dr4/wren/internal/application"
	"github.com/sp3dr4/wren/internal/domain"
	httpFX "github.com/sp3dr4/wren/internal/fx/http"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         "3000",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
			IdleTimeout:  "60s",
		},
		App: config.AppConfig{
			IDProvider: "nanoid",
			IDLength:   7,
		},
		Cache: config.CacheConfig{
			Type: "noop",
			TTL:  10 * time.Minute,
		},
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func TestWiring(t *testing.T) {
	app := fxtest.New(t,
		fx.Provide(func() (*config.Config, error) {
			return testConfig(), nil
		}),

		InfrastructureModule,
		ApplicationModule,
		MetricsModule,
		httpFX.HTTPModule,

		// Both operations observe the same store: a created mapping is
		// visible through the resolve operation.
		fx.Invoke(func(create *application.CreateShortURL, resolve *application.GetFullURL) {
			require.NotNil(t, create)
			require.NotNil(t, resolve)

			ctx := context.Background()
			id, err := create.Execute(ctx, "https://example.com/")
			require.NoError(t, err)
			require.NotEmpty(t, id)

			fullURL, err := resolve.Execute(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/", fullURL)
		}),
	)

	app.RequireStart()
	app.RequireStop()
}

func TestProviderFunctions(t *testing.T) {
	t.Run("ProvideLogger", func(t *testing.T) {
		logger := ProvideLogger(testConfig())
		assert.NotNil(t, logger)
	})

	t.Run("ProvideIDProvider", func(t *testing.T) {
		cfg := testConfig()
		logger := ProvideLogger(cfg)

		provider, err := ProvideIDProvider(cfg, logger)
		require.NoError(t, err)
		assert.Len(t, provider.Provide(), 7)

		cfg.App.IDProvider = "sqids"
		provider, err = ProvideIDProvider(cfg, logger)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(provider.Provide()), 7)

		cfg.App.IDProvider = "bogus"
		_, err = ProvideIDProvider(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("ProvideCache", func(t *testing.T) {
		cfg := testConfig()
		logger := ProvideLogger(cfg)

		c, err := ProvideCache(cfg, nil, logger)
		require.NoError(t, err)
		assert.NoError(t, c.Ping(context.Background()))

		cfg.Cache.Type = "bogus"
		_, err = ProvideCache(cfg, nil, logger)
		assert.Error(t, err)
	})

	t.Run("StoreSharedByReference", func(t *testing.T) {
		store := ProvideStore(ProvideLogger(testConfig()))
		writer := ProvideMappingWriter(store)
		reader := ProvideMappingReader(store)

		ctx := context.Background()
		require.NoError(t, writer.Save(ctx, "https://example.com/", "abc"))

		got, err := reader.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", got)
	})

	t.Run("ProvideHTTPServer", func(t *testing.T) {
		srv := httpFX.ProvideHTTPServer(testConfig(), chi.NewRouter())
		assert.Equal(t, ":3000", srv.Addr())
	})
}

func TestRegisterCacheHooks_NoRedis(t *testing.T) {
	cfg := testConfig()
	logger := ProvideLogger(cfg)
	c, err := ProvideCache(cfg, nil, logger)
	require.NoError(t, err)

	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Supply(logger),
		fx.Provide(func() domain.Cache { return c }),
		fx.Provide(ProvideRedisClient),
		fx.Invoke(RegisterCacheHooks),
	)

	app.RequireStart()
	app.RequireStop()
}
