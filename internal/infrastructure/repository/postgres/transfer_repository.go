package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/andesdata/footystats/internal/domain/transfer"
	qb "github.com/andesdata/footystats/internal/platform/querybuilder"
)

type TransferRepository struct {
	db *sqlx.DB
}

type transferTableModel struct {
	PlayerName string        `db:"player_name"`
	Date       time.Time     `db:"transfer_date"`
	FeeEUR     sql.NullInt64 `db:"transfer_fee"`
	FromClubID sql.NullInt64 `db:"from_club_id"`
	ToClubID   sql.NullInt64 `db:"to_club_id"`
}

var transferSelectColumns = []string{
	"player_name",
	"transfer_date",
	"transfer_fee",
	"from_club_id",
	"to_club_id",
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListByYear(ctx context.Context, year int) ([]transfer.Transfer, error) {
	query, args, err := qb.Select(transferSelectColumns...).From("transfers").
		Where(qb.Expr("EXTRACT(YEAR FROM transfer_date) = ?", year)).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transfers by year query")
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select transfers of %d", year)
	}

	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, transfer.Transfer{
			PlayerName: row.PlayerName,
			Date:       row.Date,
			FeeEUR:     int64Ptr(row.FeeEUR),
			FromClubID: int64Ptr(row.FromClubID),
			ToClubID:   int64Ptr(row.ToClubID),
		})
	}
	return out, nil
}

func (r *TransferRepository) ListYears(ctx context.Context, maxYear int) ([]int, error) {
	query, args, err := qb.Select("DISTINCT EXTRACT(YEAR FROM transfer_date)::int AS year").
		From("transfers").
		Where(qb.Lte("EXTRACT(YEAR FROM transfer_date)", maxYear)).
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transfer years query")
	}

	var years []int
	if err := r.db.SelectContext(ctx, &years, query, args...); err != nil {
		return nil, errors.Wrap(err, "select transfer years")
	}
	return years, nil
}
