package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/andesdata/footystats/internal/infrastructure/repository/memory"
	"github.com/andesdata/footystats/internal/platform/cache"
	"github.com/andesdata/footystats/internal/platform/logging"
	"github.com/andesdata/footystats/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	data := memory.Seed()
	players := memory.NewPlayerRepository(data)
	clubs := memory.NewClubRepository(data)
	competitions := memory.NewCompetitionRepository(data)
	games := memory.NewGameRepository(data)
	valuations := memory.NewValuationRepository(data)
	transfers := memory.NewTransferRepository(data)

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewPlayerSearchService(players, games, valuations, logger),
		usecase.NewTransferService(transfers, clubs, logger),
		usecase.NewComparisonService(clubs, competitions, games, players, valuations, logger),
		usecase.NewTopScorersService(games, logger),
		usecase.NewLookupService(competitions, players, clubs, games, valuations, transfers, cache.NewStore(time.Minute), logger),
		nil,
		logger,
	)

	return NewRouter(handler, logger, RouterConfig{SwaggerEnabled: true})
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ok", data["status"])
}

func TestRouter_SearchPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router,
		"/v1/reports/players?season=2023&nationality=Chile&position=Forward&league=Primera+Divisi%C3%B3n&minValue=1000000")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)

	row := items[0].(map[string]any)
	require.Equal(t, "Damián Pizarro", row["name"])
	require.EqualValues(t, 2_000_000, row["marketValueEur"])
}

func TestRouter_SearchPlayers_MissingFilter(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router, "/v1/reports/players?season=2023&nationality=Chile")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errObj := body["error"].(map[string]any)
	require.Equal(t, "INVALID_ARGUMENT", errObj["status"])
}

func TestRouter_SearchTransfers_FutureYearNotice(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router,
		"/v1/reports/transfers?year=2025&league=Premier+League&clubId=631&direction=in&sortKey=fee")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	require.Empty(t, data["items"])
	require.Contains(t, data["notice"], "no transfers found")
}

func TestRouter_SearchTransfers_LegacyDirectionAlias(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router,
		"/v1/reports/transfers?year=2023&league=Premier+League&clubId=631&direction=entrada&sortKey=valor")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	require.NotEmpty(t, items)

	first := items[0].(map[string]any)
	require.Equal(t, "Moisés Caicedo", first["playerName"])
}

func TestRouter_CompareClubs_SameClubRejected(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router,
		"/v1/reports/comparison?season=2023&league=Primera+Divisi%C3%B3n&clubA=Colo-Colo&clubB=Colo-Colo")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errObj := body["error"].(map[string]any)
	require.Equal(t, "INVALID_ARGUMENT", errObj["status"])
	errs := errObj["errors"].([]any)
	item := errs[0].(map[string]any)
	require.Equal(t, "invalidCombination", item["reason"])
}

func TestRouter_TopScorers(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router,
		"/v1/reports/top-scorers?league=Primera+Divisi%C3%B3n&season=2023&direction=desc&limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	require.NotEmpty(t, items)

	first := items[0].(map[string]any)
	require.EqualValues(t, 1, first["rank"])
}

func TestRouter_Lookups(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router, "/v1/lookups/leagues")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body["data"])

	rec, body = doGet(t, router, "/v1/lookups/clubs?league=Primera+Divisi%C3%B3n")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body["data"])

	rec, _ = doGet(t, router, "/v1/lookups/clubs")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, router, "/v1/lookups/clubs/999999")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_OpenAPIServedWhenEnabled(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Footystats Reporting API")
}
