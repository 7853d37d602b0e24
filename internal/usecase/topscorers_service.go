package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/platform/logging"
)

// TopScorerRow is one ranking line. A player who appeared for two
// clubs within the season yields one row per club: the ranking reads
// "goals for this club in this season", not a merged career line.
type TopScorerRow struct {
	PlayerID int64
	Name     string
	Goals    int
	Club     string
}

// TopScorersService builds the goal ranking for one league and season.
type TopScorersService struct {
	games  game.Repository
	logger *logging.Logger
}

func NewTopScorersService(games game.Repository, logger *logging.Logger) *TopScorersService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TopScorersService{games: games, logger: logger}
}

func (s *TopScorersService) Rank(ctx context.Context, in TopScorersInput) ([]TopScorerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorersService.Rank")
	defer span.End()

	appearances, err := s.games.ListLeagueAppearances(ctx, in.League, in.Season)
	if err != nil {
		return nil, fmt.Errorf("list %s %d appearances: %w", in.League, in.Season, err)
	}

	type scorerKey struct {
		playerID int64
		clubID   int64
	}
	totals := make(map[scorerKey]*TopScorerRow)
	for _, a := range appearances {
		key := scorerKey{playerID: a.PlayerID, clubID: a.ClubID}
		row, ok := totals[key]
		if !ok {
			row = &TopScorerRow{
				PlayerID: a.PlayerID,
				Name:     a.PlayerName,
				Club:     a.ClubName,
			}
			totals[key] = row
		}
		row.Goals += a.Goals
	}

	rows := make([]TopScorerRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}

	// The goal count tie-break is player id ascending; the source left
	// it undefined, a deterministic order keeps reruns identical.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Goals != rows[j].Goals {
			if in.Direction == SortAscending {
				return rows[i].Goals < rows[j].Goals
			}
			return rows[i].Goals > rows[j].Goals
		}
		if rows[i].PlayerID != rows[j].PlayerID {
			return rows[i].PlayerID < rows[j].PlayerID
		}
		return rows[i].Club < rows[j].Club
	})

	if len(rows) > in.Limit {
		rows = rows[:in.Limit]
	}

	s.logger.DebugContext(ctx, "top scorers built",
		"league", in.League,
		"season", in.Season,
		"direction", in.Direction,
		"rows", len(rows),
	)
	return rows, nil
}
