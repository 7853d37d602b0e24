package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/game"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

var gameSelectColumns = []string{
	"game_id",
	"season",
	"competition_id",
	"home_club_id",
	"away_club_id",
	"home_club_goals",
	"away_club_goals",
	"date",
}

var appearanceSelectColumns = []string{
	"a.player_id",
	"p.name AS player_name",
	"a.player_club_id",
	"c.name AS club_name",
	"comp.name AS league_name",
	"g.date AS game_date",
	"a.goals",
}

const appearanceJoin = "appearances a" +
	" JOIN games g ON g.game_id = a.game_id" +
	" JOIN players p ON p.player_id = a.player_id" +
	" JOIN clubs c ON c.club_id = a.player_club_id" +
	" JOIN competitions comp ON comp.competition_id = g.competition_id"

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListBySeasonAndCompetition(ctx context.Context, season int, competitionID string) ([]game.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(
			qb.Eq("season", season),
			qb.Eq("competition_id", competitionID),
		).
		OrderBy("date").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select games query")
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select games %s/%d", competitionID, season)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) ListSeasonAppearances(ctx context.Context, season int) ([]game.SeasonAppearance, error) {
	return r.listAppearances(ctx, []qb.Condition{qb.Eq("g.season", season)})
}

func (r *GameRepository) ListLeagueAppearances(ctx context.Context, leagueName string, season int) ([]game.SeasonAppearance, error) {
	return r.listAppearances(ctx, []qb.Condition{
		qb.Eq("g.season", season),
		qb.Eq("comp.name", leagueName),
	})
}

func (r *GameRepository) listAppearances(ctx context.Context, conditions []qb.Condition) ([]game.SeasonAppearance, error) {
	query, args, err := qb.Select(appearanceSelectColumns...).From(appearanceJoin).
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select appearances query")
	}

	var rows []seasonAppearanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select appearances")
	}

	out := make([]game.SeasonAppearance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) ListSeasons(ctx context.Context) ([]int, error) {
	query, args, err := qb.Select("DISTINCT season").From("games").
		OrderBy("season DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select seasons query")
	}

	var seasons []int
	if err := r.db.SelectContext(ctx, &seasons, query, args...); err != nil {
		return nil, errors.Wrap(err, "select seasons")
	}
	return seasons, nil
}
