package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/transfer"
	"github.com/andesdata/footystats/internal/platform/logging"
)

// TransferRow is one result line of a transfer search report. FromClub
// and ToClub are empty when the side has no resolvable domestic-league
// club (unknown club, non-domestic competition, or a null reference).
type TransferRow struct {
	PlayerName string
	FromClub   string
	ToClub     string
	Date       time.Time
	FeeEUR     *int64
}

// TransferReport carries the transfer rows plus an informational
// notice when the query was valid but matched nothing.
type TransferReport struct {
	Rows   []TransferRow
	Notice string
}

// TransferService builds the transfer search report for one club,
// year and league, filtered by transfer direction.
type TransferService struct {
	transfers transfer.Repository
	clubs     club.Repository
	logger    *logging.Logger
}

func NewTransferService(transfers transfer.Repository, clubs club.Repository, logger *logging.Logger) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TransferService{
		transfers: transfers,
		clubs:     clubs,
		logger:    logger,
	}
}

func (s *TransferService) Search(ctx context.Context, in TransferSearchInput) (TransferReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Search")
	defer span.End()

	// The feed is complete only through MaxTransferYear; later years
	// hold no rows, so the report is structurally empty rather than
	// invalid.
	var transfers []transfer.Transfer
	if in.Year <= MaxTransferYear {
		var err error
		transfers, err = s.transfers.ListByYear(ctx, in.Year)
		if err != nil {
			return TransferReport{}, fmt.Errorf("list transfers for %d: %w", in.Year, err)
		}
	}

	affiliations, err := s.clubs.ListDomesticAffiliations(ctx)
	if err != nil {
		return TransferReport{}, fmt.Errorf("list domestic affiliations: %w", err)
	}
	affiliationByClub := make(map[int64]club.LeagueAffiliation, len(affiliations))
	for _, a := range affiliations {
		affiliationByClub[a.ClubID] = a
	}

	rows := make([]TransferRow, 0, len(transfers))
	for _, t := range transfers {
		from, fromOK := resolveAffiliation(affiliationByClub, t.FromClubID)
		to, toOK := resolveAffiliation(affiliationByClub, t.ToClubID)

		// League must match on at least one resolvable side; transfers
		// touching no domestic-league club drop out here.
		leagueMatch := (fromOK && from.LeagueName == in.League) || (toOK && to.LeagueName == in.League)
		if !leagueMatch {
			continue
		}
		if !matchesDirection(t, in.Direction, in.ClubID) {
			continue
		}

		row := TransferRow{
			PlayerName: t.PlayerName,
			Date:       t.Date,
			FeeEUR:     t.FeeEUR,
		}
		if fromOK {
			row.FromClub = from.ClubName
		}
		if toOK {
			row.ToClub = to.ClubName
		}
		rows = append(rows, row)
	}

	sortTransferRows(rows, in.SortKey)

	report := TransferReport{Rows: rows}
	if len(rows) == 0 {
		report.Notice = fmt.Sprintf("no transfers found for %s (%d)", in.League, in.Year)
	}

	s.logger.DebugContext(ctx, "transfer search built",
		"year", in.Year,
		"league", in.League,
		"club_id", in.ClubID,
		"direction", in.Direction,
		"rows", len(rows),
	)
	return report, nil
}

func resolveAffiliation(byClub map[int64]club.LeagueAffiliation, clubID *int64) (club.LeagueAffiliation, bool) {
	if clubID == nil {
		return club.LeagueAffiliation{}, false
	}
	a, ok := byClub[*clubID]
	return a, ok
}

func matchesDirection(t transfer.Transfer, direction TransferDirection, clubID int64) bool {
	incoming := t.ToClubID != nil && *t.ToClubID == clubID
	outgoing := t.FromClubID != nil && *t.FromClubID == clubID

	switch direction {
	case DirectionIncoming:
		return incoming
	case DirectionOutgoing:
		return outgoing
	case DirectionBoth:
		return incoming || outgoing
	default:
		return false
	}
}

// sortTransferRows orders by fee descending with unset fees last, or
// by date descending. Player name breaks remaining ties so repeated
// searches render identically.
func sortTransferRows(rows []TransferRow, key TransferSortKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch key {
		case SortByFee:
			fi, fj := rows[i].FeeEUR, rows[j].FeeEUR
			switch {
			case fi == nil && fj == nil:
				return rows[i].PlayerName < rows[j].PlayerName
			case fi == nil:
				return false
			case fj == nil:
				return true
			case *fi != *fj:
				return *fi > *fj
			}
			return rows[i].PlayerName < rows[j].PlayerName
		default:
			if !rows[i].Date.Equal(rows[j].Date) {
				return rows[i].Date.After(rows[j].Date)
			}
			return rows[i].PlayerName < rows[j].PlayerName
		}
	})
}
