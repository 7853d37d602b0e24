package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/andesdata/footystats/internal/usecase"
)

type clubOptionDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type clubNameDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.lookups.DomesticLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) ListValuationYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListValuationYears")
	defer span.End()

	years, err := h.lookups.ValuationYears(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list valuation years failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, years)
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.lookups.PlayedSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) ListTransferYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransferYears")
	defer span.End()

	years, err := h.lookups.TransferYears(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfer years failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, years)
}

func (h *Handler) ListNationalities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNationalities")
	defer span.End()

	nationalities, err := h.lookups.Nationalities(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list nationalities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nationalities)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.lookups.Positions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list positions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, positions)
}

func (h *Handler) ListClubsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubsByLeague")
	defer span.End()

	league := strings.TrimSpace(r.URL.Query().Get("league"))
	if league == "" {
		writeError(ctx, w, usecase.ErrIncompleteFilters)
		return
	}

	clubs, err := h.lookups.ClubsByLeague(ctx, league)
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubOptionDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubOptionDTO{ID: c.ID, Name: c.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClubName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubName")
	defer span.End()

	rawID := r.PathValue("clubID")
	clubID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: clubID %q is not an integer", usecase.ErrInvalidValue, rawID))
		return
	}

	name, err := h.lookups.ClubName(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "club name lookup failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubNameDTO{ID: clubID, Name: name})
}
