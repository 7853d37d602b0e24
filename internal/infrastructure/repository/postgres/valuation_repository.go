package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/valuation"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type ValuationRepository struct {
	db *sqlx.DB
}

type valuationTableModel struct {
	PlayerID       int64     `db:"player_id"`
	Date           time.Time `db:"date"`
	MarketValueEUR int64     `db:"market_value_in_eur"`
}

var valuationSelectColumns = []string{
	"player_id",
	"date",
	"market_value_in_eur",
}

func NewValuationRepository(db *sqlx.DB) *ValuationRepository {
	return &ValuationRepository{db: db}
}

func (r *ValuationRepository) ListByYear(ctx context.Context, year int) ([]valuation.Valuation, error) {
	query, args, err := qb.Select(valuationSelectColumns...).From("player_valuations").
		Where(qb.Expr("EXTRACT(YEAR FROM date) = ?", year)).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select valuations by year query")
	}
	return r.selectValuations(ctx, query, args)
}

func (r *ValuationRepository) ListByPlayers(ctx context.Context, playerIDs []int64) ([]valuation.Valuation, error) {
	query, args, err := qb.Select(valuationSelectColumns...).From("player_valuations").
		Where(qb.In("player_id", int64Args(playerIDs))).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select valuations by players query")
	}
	return r.selectValuations(ctx, query, args)
}

func (r *ValuationRepository) ListYears(ctx context.Context) ([]int, error) {
	query, args, err := qb.Select("DISTINCT EXTRACT(YEAR FROM date)::int AS year").
		From("player_valuations").
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select valuation years query")
	}

	var years []int
	if err := r.db.SelectContext(ctx, &years, query, args...); err != nil {
		return nil, errors.Wrap(err, "select valuation years")
	}
	return years, nil
}

func (r *ValuationRepository) selectValuations(ctx context.Context, query string, args []any) ([]valuation.Valuation, error) {
	var rows []valuationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select valuations")
	}

	out := make([]valuation.Valuation, 0, len(rows))
	for _, row := range rows {
		out = append(out, valuation.Valuation{
			PlayerID:       row.PlayerID,
			Date:           row.Date,
			MarketValueEUR: row.MarketValueEUR,
		})
	}
	return out, nil
}
