package memory

import (
	"context"
	"sort"

	"github.com/andesdata/footystats/internal/domain/transfer"
)

type TransferRepository struct {
	data *Dataset
}

func NewTransferRepository(data *Dataset) *TransferRepository {
	return &TransferRepository{data: data}
}

func (r *TransferRepository) ListByYear(_ context.Context, year int) ([]transfer.Transfer, error) {
	out := make([]transfer.Transfer, 0)
	for _, t := range r.data.Transfers {
		if t.Date.Year() == year {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TransferRepository) ListYears(_ context.Context, maxYear int) ([]int, error) {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, t := range r.data.Transfers {
		year := t.Date.Year()
		if year > maxYear {
			continue
		}
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		out = append(out, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}
