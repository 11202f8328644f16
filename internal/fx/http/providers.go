package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sp3dr4/wren/config"
	httpAdapter "github.com/sp3dr4/wren/internal/adapters/http"
	"github.com/sp3dr4/wren/internal/application"
	"github.com/sp3dr4/wren/internal/domain"
	"github.com/sp3dr4/wren/internal/pkg/metrics"
	"github.com/sp3dr4/wren/internal/server"
)

// HTTPServer implements server.Server on net/http.
type HTTPServer struct {
	server *http.Server
}

func (s *HTTPServer) Start(context.Context) error {
	go func() {
		_ = s.server.ListenAndServe()
	}()
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

// ProvideHTTPServer builds the HTTP server from config and the router.
func ProvideHTTPServer(cfg *config.Config, router chi.Router) server.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	if timeout, err := time.ParseDuration(cfg.Server.ReadTimeout); err == nil {
		srv.ReadTimeout = timeout
	}
	if timeout, err := time.ParseDuration(cfg.Server.WriteTimeout); err == nil {
		srv.WriteTimeout = timeout
	}
	if timeout, err := time.ParseDuration(cfg.Server.IdleTimeout); err == nil {
		srv.IdleTimeout = timeout
	}

	return &HTTPServer{server: srv}
}

// ProvideHandlers creates the HTTP handlers from the two operations.
func ProvideHandlers(create *application.CreateShortURL, resolve *application.GetFullURL, cache domain.Cache, registry metrics.Registry) *httpAdapter.Handlers {
	return httpAdapter.NewHandlers(create, resolve, cache, registry)
}
