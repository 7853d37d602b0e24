package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/reports/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/reports/transfers", handler.SearchTransfers)
	mux.HandleFunc("GET /v1/reports/comparison", handler.CompareClubs)
	mux.HandleFunc("GET /v1/reports/top-scorers", handler.RankTopScorers)
}

func registerLookupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/lookups/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/lookups/valuation-years", handler.ListValuationYears)
	mux.HandleFunc("GET /v1/lookups/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/lookups/transfer-years", handler.ListTransferYears)
	mux.HandleFunc("GET /v1/lookups/nationalities", handler.ListNationalities)
	mux.HandleFunc("GET /v1/lookups/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/lookups/clubs", handler.ListClubsByLeague)
	mux.HandleFunc("GET /v1/lookups/clubs/{clubID}", handler.GetClubName)
}
