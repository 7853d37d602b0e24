package memory

import (
	"context"
	"sort"

	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
)

type ClubRepository struct {
	data *Dataset
}

func NewClubRepository(data *Dataset) *ClubRepository {
	return &ClubRepository{data: data}
}

func (r *ClubRepository) GetByID(_ context.Context, id int64) (club.Club, bool, error) {
	c, found := r.data.clubByID(id)
	return c, found, nil
}

func (r *ClubRepository) ListByNames(_ context.Context, names []string) ([]club.Club, error) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	out := make([]club.Club, 0, len(names))
	for _, c := range r.data.Clubs {
		if _, ok := wanted[c.Name]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ClubRepository) ListByLeague(_ context.Context, leagueName string) ([]club.Club, error) {
	out := make([]club.Club, 0)
	for _, c := range r.data.Clubs {
		comp, found := r.data.competitionByID(c.DomesticCompetitionID)
		if !found || comp.Name != leagueName {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ClubRepository) ListDomesticAffiliations(_ context.Context) ([]club.LeagueAffiliation, error) {
	out := make([]club.LeagueAffiliation, 0, len(r.data.Clubs))
	for _, c := range r.data.Clubs {
		comp, found := r.data.competitionByID(c.DomesticCompetitionID)
		if !found || comp.Type != competition.TypeDomesticLeague {
			continue
		}
		out = append(out, club.LeagueAffiliation{
			ClubID:     c.ID,
			ClubName:   c.Name,
			LeagueName: comp.Name,
		})
	}
	return out, nil
}
