package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/competition"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

type competitionTableModel struct {
	CompetitionID string `db:"competition_id"`
	Name          string `db:"name"`
	Type          string `db:"type"`
}

var competitionSelectColumns = []string{
	"competition_id",
	"name",
	"type",
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) ListDomesticLeagues(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select(competitionSelectColumns...).From("competitions").
		Where(qb.Eq("type", competition.TypeDomesticLeague)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select domestic leagues query")
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select domestic leagues")
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competition.Competition{
			ID:   row.CompetitionID,
			Name: row.Name,
			Type: row.Type,
		})
	}
	return out, nil
}

func (r *CompetitionRepository) GetDomesticLeagueByName(ctx context.Context, name string) (competition.Competition, bool, error) {
	query, args, err := qb.Select(competitionSelectColumns...).From("competitions").
		Where(
			qb.Eq("type", competition.TypeDomesticLeague),
			qb.Eq("name", name),
		).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, errors.Wrap(err, "build select league by name query")
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, errors.Wrapf(err, "select league %q", name)
	}
	return competition.Competition{ID: row.CompetitionID, Name: row.Name, Type: row.Type}, true, nil
}
