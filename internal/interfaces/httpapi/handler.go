package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/andesdata/footystats/internal/platform/logging"
	"github.com/andesdata/footystats/internal/platform/resilience"
	"github.com/andesdata/footystats/internal/usecase"
)

type Handler struct {
	playerSearch *usecase.PlayerSearchService
	transfers    *usecase.TransferService
	comparison   *usecase.ComparisonService
	topScorers   *usecase.TopScorersService
	lookups      *usecase.LookupService
	breaker      *resilience.CircuitBreaker
	logger       *logging.Logger
}

func NewHandler(
	playerSearch *usecase.PlayerSearchService,
	transfers *usecase.TransferService,
	comparison *usecase.ComparisonService,
	topScorers *usecase.TopScorersService,
	lookups *usecase.LookupService,
	breaker *resilience.CircuitBreaker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerSearch: playerSearch,
		transfers:    transfers,
		comparison:   comparison,
		topScorers:   topScorers,
		lookups:      lookups,
		breaker:      breaker,
		logger:       logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// guarded runs fn behind the storage circuit breaker. Client-side
// failures (bad filters, unknown resources) do not count against the
// breaker; only storage-class errors trip it.
func (h *Handler) guarded(ctx context.Context, fn func(context.Context) error) error {
	if h.breaker == nil {
		return fn(ctx)
	}

	if err := h.breaker.Allow(); err != nil {
		return fmt.Errorf("%w: report storage is unavailable", usecase.ErrDependencyUnavailable)
	}

	err := fn(ctx)
	if err == nil || isClientError(err) {
		h.breaker.RecordSuccess()
		return err
	}

	h.breaker.RecordFailure()
	return err
}

func isClientError(err error) bool {
	return errors.Is(err, usecase.ErrIncompleteFilters) ||
		errors.Is(err, usecase.ErrInvalidValue) ||
		errors.Is(err, usecase.ErrInvalidCombination) ||
		errors.Is(err, usecase.ErrNotFound)
}

func queryValues(r *http.Request) map[string]string {
	query := r.URL.Query()
	out := make(map[string]string, len(query))
	for key := range query {
		out[key] = query.Get(key)
	}
	return out
}
