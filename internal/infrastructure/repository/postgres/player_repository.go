package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/player"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"player_id",
	"name",
	"country_of_citizenship",
	"position",
	"current_club_id",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByNationalityAndPosition(ctx context.Context, nationality string, position player.Position) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("country_of_citizenship", nationality),
			qb.In("position", stringArgs(player.MatchCodes(position))),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by nationality query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by nationality")
	}
	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListByCurrentClubs(ctx context.Context, clubIDs []int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("current_club_id", int64Args(clubIDs))).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by club query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by club")
	}
	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListNationalities(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "country_of_citizenship")
}

func (r *PlayerRepository) ListPositions(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "position")
}

func (r *PlayerRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query, args, err := qb.Select("DISTINCT "+column).From("players").
		Where(qb.NotNull(column)).
		OrderBy(column).
		ToSQL()
	if err != nil {
		return nil, errors.Wrapf(err, "build distinct %s query", column)
	}

	var values []string
	if err := r.db.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select distinct %s", column)
	}
	return values, nil
}

func playersToDomain(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
