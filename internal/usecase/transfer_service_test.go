package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/andesdata/footystats/internal/infrastructure/repository/memory"
	"github.com/andesdata/footystats/internal/platform/logging"
)

func newTransferService() *TransferService {
	data := memory.Seed()
	return NewTransferService(
		memory.NewTransferRepository(data),
		memory.NewClubRepository(data),
		logging.NewNop(),
	)
}

func TestTransferService_Search_BothDirectionsSortedByFee(t *testing.T) {
	svc := newTransferService()

	report, err := svc.Search(context.Background(), TransferSearchInput{
		Year:      2023,
		League:    "Premier League",
		ClubID:    memory.ClubChelsea,
		Direction: DirectionBoth,
		SortKey:   SortByFee,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if report.Notice != "" {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(report.Rows), report.Rows)
	}
	if report.Rows[0].PlayerName != "Moisés Caicedo" || report.Rows[1].PlayerName != "Kai Havertz" {
		t.Fatalf("unexpected fee order: %+v", report.Rows)
	}
	if report.Rows[0].FromClub != "Brighton & Hove Albion" || report.Rows[0].ToClub != "Chelsea FC" {
		t.Fatalf("unexpected club resolution: %+v", report.Rows[0])
	}
}

func TestTransferService_Search_IncomingOnly(t *testing.T) {
	svc := newTransferService()

	report, err := svc.Search(context.Background(), TransferSearchInput{
		Year:      2023,
		League:    "Premier League",
		ClubID:    memory.ClubChelsea,
		Direction: DirectionIncoming,
		SortKey:   SortByDate,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(report.Rows) != 1 || report.Rows[0].PlayerName != "Moisés Caicedo" {
		t.Fatalf("unexpected rows: %+v", report.Rows)
	}
}

func TestTransferService_Search_UnknownFromClubLeavesSideEmpty(t *testing.T) {
	svc := newTransferService()

	report, err := svc.Search(context.Background(), TransferSearchInput{
		Year:      2023,
		League:    "Premier League",
		ClubID:    memory.ClubArsenal,
		Direction: DirectionIncoming,
		SortKey:   SortByFee,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", report.Rows)
	}
	rice := report.Rows[0]
	if rice.PlayerName != "Declan Rice" {
		t.Fatalf("unexpected first row: %+v", rice)
	}
	if rice.FromClub != "" {
		t.Fatalf("expected unresolvable from club to stay empty, got %q", rice.FromClub)
	}
	if rice.ToClub != "Arsenal FC" {
		t.Fatalf("unexpected to club: %q", rice.ToClub)
	}
}

func TestTransferService_Search_MissingFeeSortsLast(t *testing.T) {
	svc := newTransferService()

	report, err := svc.Search(context.Background(), TransferSearchInput{
		Year:      2023,
		League:    "Primera División",
		ClubID:    memory.ClubCobresal,
		Direction: DirectionIncoming,
		SortKey:   SortByFee,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 row, got %+v", report.Rows)
	}
	if report.Rows[0].FeeEUR != nil {
		t.Fatalf("expected free transfer without fee, got %v", *report.Rows[0].FeeEUR)
	}
}

func TestTransferService_Search_YearPastFeedCutoffYieldsNotice(t *testing.T) {
	svc := newTransferService()

	report, err := svc.Search(context.Background(), TransferSearchInput{
		Year:      MaxTransferYear + 1,
		League:    "Premier League",
		ClubID:    memory.ClubChelsea,
		Direction: DirectionBoth,
		SortKey:   SortByFee,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(report.Rows) != 0 {
		t.Fatalf("expected no rows, got %+v", report.Rows)
	}
	if !strings.Contains(report.Notice, "no transfers found") {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
}
