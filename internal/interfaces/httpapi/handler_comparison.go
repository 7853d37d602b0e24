package httpapi

import (
	"context"
	"net/http"

	"github.com/andesdata/footystats/internal/usecase"
)

type comparisonRowDTO struct {
	Club          string `json:"club"`
	GoalsFor      int    `json:"goalsFor"`
	GoalsAgainst  int    `json:"goalsAgainst"`
	SquadValueEUR *int64 `json:"squadValueEur"`
}

type comparisonReportDTO struct {
	Items  []comparisonRowDTO `json:"items"`
	Notice string             `json:"notice,omitempty"`
}

func (h *Handler) CompareClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareClubs")
	defer span.End()

	in, err := usecase.ParseComparisonInput(queryValues(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var report usecase.ComparisonReport
	err = h.guarded(ctx, func(ctx context.Context) error {
		var compareErr error
		report, compareErr = h.comparison.Compare(ctx, in)
		return compareErr
	})
	if err != nil {
		h.logger.WarnContext(ctx, "club comparison failed",
			"season", in.Season,
			"club_a", in.ClubA,
			"club_b", in.ClubB,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]comparisonRowDTO, 0, len(report.Rows))
	for _, row := range report.Rows {
		items = append(items, comparisonRowDTO{
			Club:          row.Club,
			GoalsFor:      row.GoalsFor,
			GoalsAgainst:  row.GoalsAgainst,
			SquadValueEUR: row.SquadValueEUR,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonReportDTO{
		Items:  items,
		Notice: report.Notice,
	})
}
