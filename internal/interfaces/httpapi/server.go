package httpapi

import (
	"net/http"

	"github.com/andesdata/footystats/internal/platform/id"
	"github.com/andesdata/footystats/internal/platform/logging"
)

type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerReportRoutes(mux, handler)
	registerLookupRoutes(mux, handler)

	chain := recoverPanic(logger, mux)
	chain = RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, chain)
	chain = CORS(cfg.CORSAllowedOrigins, chain)
	chain = RequestLogging(logger, id.NewRandomGenerator(), chain)
	return RequestTracing(chain)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
