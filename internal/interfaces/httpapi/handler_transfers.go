package httpapi

import (
	"context"
	"net/http"

	"github.com/andesdata/footystats/internal/usecase"
)

const transferDateLayout = "2006-01-02"

type transferRowDTO struct {
	PlayerName string `json:"playerName"`
	FromClub   string `json:"fromClub,omitempty"`
	ToClub     string `json:"toClub,omitempty"`
	Date       string `json:"date"`
	FeeEUR     *int64 `json:"feeEur"`
}

type transferReportDTO struct {
	Items  []transferRowDTO `json:"items"`
	Notice string           `json:"notice,omitempty"`
}

func (h *Handler) SearchTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTransfers")
	defer span.End()

	in, err := usecase.ParseTransferSearchInput(queryValues(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var report usecase.TransferReport
	err = h.guarded(ctx, func(ctx context.Context) error {
		var searchErr error
		report, searchErr = h.transfers.Search(ctx, in)
		return searchErr
	})
	if err != nil {
		h.logger.WarnContext(ctx, "transfer search failed",
			"year", in.Year,
			"club_id", in.ClubID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferRowDTO, 0, len(report.Rows))
	for _, row := range report.Rows {
		items = append(items, transferRowDTO{
			PlayerName: row.PlayerName,
			FromClub:   row.FromClub,
			ToClub:     row.ToClub,
			Date:       row.Date.Format(transferDateLayout),
			FeeEUR:     row.FeeEUR,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, transferReportDTO{
		Items:  items,
		Notice: report.Notice,
	})
}
