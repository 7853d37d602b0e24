package memory

import (
	"context"
	"sort"

	"github.com/andesdata/footystats/internal/domain/competition"
)

type CompetitionRepository struct {
	data *Dataset
}

func NewCompetitionRepository(data *Dataset) *CompetitionRepository {
	return &CompetitionRepository{data: data}
}

func (r *CompetitionRepository) ListDomesticLeagues(_ context.Context) ([]competition.Competition, error) {
	out := make([]competition.Competition, 0)
	for _, c := range r.data.Competitions {
		if c.IsDomesticLeague() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CompetitionRepository) GetDomesticLeagueByName(_ context.Context, name string) (competition.Competition, bool, error) {
	for _, c := range r.data.Competitions {
		if c.IsDomesticLeague() && c.Name == name {
			return c, true, nil
		}
	}
	return competition.Competition{}, false, nil
}
