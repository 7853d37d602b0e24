package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/domain/valuation"
	"github.com/andesdata/footystats/internal/platform/asof"
	"github.com/andesdata/footystats/internal/platform/logging"
)

// PlayerSearchRow is one result line of a player search report.
type PlayerSearchRow struct {
	PlayerID    int64
	Name        string
	Nationality string
	Position    string
	Club        string
	ValueEUR    int64
	League      string
}

// PlayerSearchService builds the player search report: players of a
// nationality and position whose season club plays in the requested
// league and whose latest in-season valuation exceeds a threshold.
type PlayerSearchService struct {
	players    player.Repository
	games      game.Repository
	valuations valuation.Repository
	logger     *logging.Logger
}

func NewPlayerSearchService(
	players player.Repository,
	games game.Repository,
	valuations valuation.Repository,
	logger *logging.Logger,
) *PlayerSearchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerSearchService{
		players:    players,
		games:      games,
		valuations: valuations,
		logger:     logger,
	}
}

func (s *PlayerSearchService) Search(ctx context.Context, in PlayerSearchInput) ([]PlayerSearchRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSearchService.Search")
	defer span.End()

	valuations, err := s.valuations.ListByYear(ctx, in.Season)
	if err != nil {
		return nil, fmt.Errorf("list valuations for season %d: %w", in.Season, err)
	}
	// Valuations observed the same day resolve to the highest player id
	// so repeated searches return identical rows.
	sort.SliceStable(valuations, func(i, j int) bool {
		return valuations[i].PlayerID < valuations[j].PlayerID
	})
	latestValue := asof.Latest(valuations,
		func(v valuation.Valuation) int64 { return v.PlayerID },
		func(v valuation.Valuation) int64 { return v.Date.UnixNano() },
	)

	appearances, err := s.games.ListSeasonAppearances(ctx, in.Season)
	if err != nil {
		return nil, fmt.Errorf("list season %d appearances: %w", in.Season, err)
	}
	seasonClub := asof.Latest(appearances,
		func(a game.SeasonAppearance) int64 { return a.PlayerID },
		func(a game.SeasonAppearance) int64 { return a.GameDate.UnixNano() },
	)

	players, err := s.players.ListByNationalityAndPosition(ctx, in.Nationality, in.Position)
	if err != nil {
		return nil, fmt.Errorf("list players %s/%s: %w", in.Nationality, in.Position, err)
	}

	rows := make([]PlayerSearchRow, 0, len(players))
	for _, p := range players {
		value, valued := latestValue[p.ID]
		clubOfSeason, played := seasonClub[p.ID]
		if !valued || !played {
			// inner-join semantics: both resolutions must exist
			continue
		}
		if clubOfSeason.LeagueName != in.League {
			continue
		}
		if float64(value.MarketValueEUR) <= in.MinValueEUR {
			continue
		}
		rows = append(rows, PlayerSearchRow{
			PlayerID:    p.ID,
			Name:        p.Name,
			Nationality: p.Nationality,
			Position:    p.Position,
			Club:        clubOfSeason.ClubName,
			ValueEUR:    value.MarketValueEUR,
			League:      clubOfSeason.LeagueName,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ValueEUR != rows[j].ValueEUR {
			return rows[i].ValueEUR > rows[j].ValueEUR
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	s.logger.DebugContext(ctx, "player search built",
		"season", in.Season,
		"league", in.League,
		"rows", len(rows),
	)
	return rows, nil
}
