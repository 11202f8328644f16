package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sp3dr4/wren/internal/application"
	"github.com/sp3dr4/wren/internal/domain"
	"github.com/sp3dr4/wren/internal/pkg/metrics"
)

// Handlers translates the HTTP wire contract into the two use-case
// operations. Error kinds map to fixed status codes and messages; nothing of
// the internal representation leaks to the client.
type Handlers struct {
	create  *application.CreateShortURL
	resolve *application.GetFullURL
	cache   domain.Cache
	metrics metrics.Registry
}

func NewHandlers(create *application.CreateShortURL, resolve *application.GetFullURL, cache domain.Cache, registry metrics.Registry) *Handlers {
	return &Handlers{
		create:  create,
		resolve: resolve,
		cache:   cache,
		metrics: registry,
	}
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ID string `json:"id"`
}

type resolveResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the fixed error payload of the API.
type ErrorResponse struct {
	Message string `json:"message" example:"Not found"`
}

// HandleHealth handles the liveness endpoint.
//
//	@Summary		Health check endpoint
//	@Description	Check if the service is running
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string	"OK"
//	@Router			/health [get]
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleReady handles the readiness endpoint.
//
//	@Summary		Readiness check endpoint
//	@Description	Check if the service is ready to serve requests
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	object{status=string}	"Service is ready"
//	@Failure		503	{object}	ErrorResponse			"Service is not ready"
//	@Router			/ready [get]
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		slog.Error("Readiness check failed", "error", err)
		respondWithError(w, http.StatusServiceUnavailable, "Service not ready")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// HandleShorten handles mapping creation.
//
//	@Summary		Create a mapping
//	@Description	Map a full URL to a short identifier
//	@Tags			mappings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shortenRequest	true	"URL to map"
//	@Success		200		{object}	shortenResponse	"Identifier of the new mapping"
//	@Failure		400		{object}	ErrorResponse	"Invalid URL"
//	@Router			/ [post]
func (h *Handlers) HandleShorten(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid URL")
		return
	}

	id, err := h.create.Execute(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidURL) {
			respondWithError(w, http.StatusBadRequest, "Invalid URL")
			return
		}
		slog.Error("Failed to create mapping", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create mapping")
		return
	}

	h.metrics.IncMappingsCreated()
	respondWithJSON(w, http.StatusOK, shortenResponse{ID: id})
}

// HandleResolve handles mapping lookup.
//
//	@Summary		Resolve a mapping
//	@Description	Return the full URL stored for an identifier
//	@Tags			mappings
//	@Produce		json
//	@Param			id	path		string			true	"Identifier"
//	@Success		200	{object}	resolveResponse	"Stored full URL"
//	@Failure		404	{object}	ErrorResponse	"Not found"
//	@Router			/{id} [get]
func (h *Handlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fullURL, err := h.resolve.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}
		slog.Error("Failed to resolve mapping", "id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to resolve mapping")
		return
	}

	h.metrics.IncMappingsResolved()
	respondWithJSON(w, http.StatusOK, resolveResponse{URL: fullURL})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Message: message})
}
