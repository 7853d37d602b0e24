package memory

import (
	"context"

	"github.com/andesdata/footystats/internal/domain/valuation"
)

type ValuationRepository struct {
	data *Dataset
}

func NewValuationRepository(data *Dataset) *ValuationRepository {
	return &ValuationRepository{data: data}
}

func (r *ValuationRepository) ListByYear(_ context.Context, year int) ([]valuation.Valuation, error) {
	out := make([]valuation.Valuation, 0)
	for _, v := range r.data.Valuations {
		if v.Date.Year() == year {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *ValuationRepository) ListByPlayers(_ context.Context, playerIDs []int64) ([]valuation.Valuation, error) {
	wanted := make(map[int64]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	out := make([]valuation.Valuation, 0)
	for _, v := range r.data.Valuations {
		if _, ok := wanted[v.PlayerID]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *ValuationRepository) ListYears(_ context.Context) ([]int, error) {
	return distinctIntsDesc(r.data.Valuations, func(v valuation.Valuation) int { return v.Date.Year() }), nil
}
