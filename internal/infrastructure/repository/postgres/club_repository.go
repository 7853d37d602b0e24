package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

var clubSelectColumns = []string{
	"club_id",
	"name",
	"domestic_competition_id",
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		Where(qb.Eq("club_id", id)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, errors.Wrap(err, "build select club by id query")
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, errors.Wrapf(err, "select club %d", id)
	}
	return row.toDomain(), true, nil
}

func (r *ClubRepository) ListByNames(ctx context.Context, names []string) ([]club.Club, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		Where(qb.In("name", stringArgs(names))).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select clubs by names query")
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select clubs by names")
	}
	return clubsToDomain(rows), nil
}

func (r *ClubRepository) ListByLeague(ctx context.Context, leagueName string) ([]club.Club, error) {
	query, args, err := qb.Select("c.club_id", "c.name", "c.domestic_competition_id").
		From("clubs c JOIN competitions comp ON comp.competition_id = c.domestic_competition_id").
		Where(qb.Eq("comp.name", leagueName)).
		OrderBy("c.name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select clubs by league query")
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select clubs of league %q", leagueName)
	}
	return clubsToDomain(rows), nil
}

func (r *ClubRepository) ListDomesticAffiliations(ctx context.Context) ([]club.LeagueAffiliation, error) {
	query, args, err := qb.Select("c.club_id", "c.name AS club_name", "comp.name AS league_name").
		From("clubs c JOIN competitions comp ON comp.competition_id = c.domestic_competition_id").
		Where(qb.Eq("comp.type", competition.TypeDomesticLeague)).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select domestic affiliations query")
	}

	var rows []affiliationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select domestic affiliations")
	}

	out := make([]club.LeagueAffiliation, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.LeagueAffiliation{
			ClubID:     row.ClubID,
			ClubName:   row.ClubName,
			LeagueName: row.LeagueName,
		})
	}
	return out, nil
}

func clubsToDomain(rows []clubTableModel) []club.Club {
	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
