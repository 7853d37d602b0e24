package memory

import (
	"context"
	"sort"

	"github.com/andesdata/footystats/internal/domain/game"
)

type GameRepository struct {
	data *Dataset
}

func NewGameRepository(data *Dataset) *GameRepository {
	return &GameRepository{data: data}
}

func (r *GameRepository) ListBySeasonAndCompetition(_ context.Context, season int, competitionID string) ([]game.Game, error) {
	out := make([]game.Game, 0)
	for _, g := range r.data.Games {
		if g.Season == season && g.CompetitionID == competitionID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GameRepository) ListSeasonAppearances(ctx context.Context, season int) ([]game.SeasonAppearance, error) {
	return r.listAppearances(ctx, season, "")
}

func (r *GameRepository) ListLeagueAppearances(ctx context.Context, leagueName string, season int) ([]game.SeasonAppearance, error) {
	return r.listAppearances(ctx, season, leagueName)
}

func (r *GameRepository) listAppearances(_ context.Context, season int, leagueName string) ([]game.SeasonAppearance, error) {
	out := make([]game.SeasonAppearance, 0)
	for _, a := range r.data.Appearances {
		g, found := r.data.gameByID(a.GameID)
		if !found || g.Season != season {
			continue
		}
		comp, found := r.data.competitionByID(g.CompetitionID)
		if !found {
			continue
		}
		if leagueName != "" && comp.Name != leagueName {
			continue
		}
		c, found := r.data.clubByID(a.ClubID)
		if !found {
			continue
		}
		p, found := r.data.playerByID(a.PlayerID)
		if !found {
			continue
		}
		out = append(out, game.SeasonAppearance{
			PlayerID:   a.PlayerID,
			PlayerName: p.Name,
			ClubID:     a.ClubID,
			ClubName:   c.Name,
			LeagueName: comp.Name,
			GameDate:   g.Date,
			Goals:      a.Goals,
		})
	}
	return out, nil
}

func (r *GameRepository) ListSeasons(_ context.Context) ([]int, error) {
	return distinctIntsDesc(r.data.Games, func(g game.Game) int { return g.Season }), nil
}

func distinctIntsDesc[T any](items []T, value func(T) int) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, item := range items {
		v := value(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
