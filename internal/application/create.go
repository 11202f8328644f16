// Package application holds the two use-case operations sitting between the
// HTTP boundary and the mapping store. Both are stateless apart from the
// capability references they hold, which the composition root shares between
// them.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/sp3dr4/wren/internal/domain"
)

// CreateShortURL validates an input URL, obtains an identifier and writes
// the pair into the mapping store.
type CreateShortURL struct {
	ids      domain.IDProvider
	store    domain.MappingWriter
	validate *validator.Validate
	logger   *slog.Logger
}

func NewCreateShortURL(ids domain.IDProvider, store domain.MappingWriter, logger *slog.Logger) *CreateShortURL {
	return &CreateShortURL{
		ids:      ids,
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// Execute maps rawURL to a fresh identifier and returns it. A malformed URL
// fails with domain.ErrInvalidURL before the store is touched; a store error
// is propagated wrapped. Exactly one write happens on the success path.
//
// The stored value is the canonical form url.Parse(rawURL).String(): the
// scheme is lowercased and percent-encodings are re-encoded, otherwise the
// input is kept byte-for-byte (no trailing-slash insertion).
func (op *CreateShortURL) Execute(ctx context.Context, rawURL string) (string, error) {
	canonical, err := op.canonicalize(rawURL)
	if err != nil {
		return "", err
	}

	id := op.ids.Provide()
	if err := op.store.Save(ctx, canonical, id); err != nil {
		return "", fmt.Errorf("save mapping %q: %w", id, err)
	}

	op.logger.Debug("Created mapping", "id", id, "url", canonical)
	return id, nil
}

// canonicalize rejects anything that is not a syntactically well-formed
// absolute URL with a host. The raw parser error never escapes; callers see
// only domain.ErrInvalidURL.
func (op *CreateShortURL) canonicalize(rawURL string) (string, error) {
	if err := op.validate.Var(rawURL, "required,url"); err != nil {
		return "", domain.ErrInvalidURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", domain.ErrInvalidURL
	}
	return u.String(), nil
}
