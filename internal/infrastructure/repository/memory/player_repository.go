package memory

import (
	"context"
	"sort"

	"github.com/andesdata/footystats/internal/domain/player"
)

type PlayerRepository struct {
	data *Dataset
}

func NewPlayerRepository(data *Dataset) *PlayerRepository {
	return &PlayerRepository{data: data}
}

func (r *PlayerRepository) ListByNationalityAndPosition(_ context.Context, nationality string, position player.Position) ([]player.Player, error) {
	codes := make(map[string]struct{})
	for _, code := range player.MatchCodes(position) {
		codes[code] = struct{}{}
	}

	out := make([]player.Player, 0)
	for _, p := range r.data.Players {
		if p.Nationality != nationality {
			continue
		}
		if _, ok := codes[p.Position]; !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) ListByCurrentClubs(_ context.Context, clubIDs []int64) ([]player.Player, error) {
	wanted := make(map[int64]struct{}, len(clubIDs))
	for _, id := range clubIDs {
		wanted[id] = struct{}{}
	}

	out := make([]player.Player, 0)
	for _, p := range r.data.Players {
		if p.CurrentClubID == nil {
			continue
		}
		if _, ok := wanted[*p.CurrentClubID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) ListNationalities(_ context.Context) ([]string, error) {
	return distinctStrings(r.data.Players, func(p player.Player) string { return p.Nationality }), nil
}

func (r *PlayerRepository) ListPositions(_ context.Context) ([]string, error) {
	return distinctStrings(r.data.Players, func(p player.Player) string { return p.Position }), nil
}

func distinctStrings[T any](items []T, value func(T) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		v := value(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
