package httpapi

import (
	"context"
	"net/http"

	"github.com/andesdata/footystats/internal/usecase"
)

type topScorerRowDTO struct {
	Rank     int    `json:"rank"`
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Club     string `json:"club"`
}

type topScorersReportDTO struct {
	Items []topScorerRowDTO `json:"items"`
}

func (h *Handler) RankTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RankTopScorers")
	defer span.End()

	in, err := usecase.ParseTopScorersInput(queryValues(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var rows []usecase.TopScorerRow
	err = h.guarded(ctx, func(ctx context.Context) error {
		var rankErr error
		rows, rankErr = h.topScorers.Rank(ctx, in)
		return rankErr
	})
	if err != nil {
		h.logger.WarnContext(ctx, "top scorer ranking failed",
			"season", in.Season,
			"league", in.League,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]topScorerRowDTO, 0, len(rows))
	for i, row := range rows {
		items = append(items, topScorerRowDTO{
			Rank:     i + 1,
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Goals:    row.Goals,
			Club:     row.Club,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersReportDTO{Items: items})
}
