package httpapi

import (
	"context"
	"net/http"

	"github.com/andesdata/footystats/internal/usecase"
)

type playerSearchRowDTO struct {
	PlayerID       int64  `json:"playerId"`
	Name           string `json:"name"`
	Nationality    string `json:"nationality"`
	Position       string `json:"position"`
	Club           string `json:"club"`
	MarketValueEUR int64  `json:"marketValueEur"`
	League         string `json:"league"`
}

type playerSearchReportDTO struct {
	Items []playerSearchRowDTO `json:"items"`
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	in, err := usecase.ParsePlayerSearchInput(queryValues(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var rows []usecase.PlayerSearchRow
	err = h.guarded(ctx, func(ctx context.Context) error {
		var searchErr error
		rows, searchErr = h.playerSearch.Search(ctx, in)
		return searchErr
	})
	if err != nil {
		h.logger.WarnContext(ctx, "player search failed",
			"season", in.Season,
			"league", in.League,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerSearchRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, playerSearchRowDTO{
			PlayerID:       row.PlayerID,
			Name:           row.Name,
			Nationality:    row.Nationality,
			Position:       row.Position,
			Club:           row.Club,
			MarketValueEUR: row.ValueEUR,
			League:         row.League,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, playerSearchReportDTO{Items: items})
}
