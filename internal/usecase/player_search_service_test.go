package usecase

import (
	"context"
	"testing"

	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/infrastructure/repository/memory"
	"github.com/andesdata/footystats/internal/platform/logging"
)

func newPlayerSearchService() *PlayerSearchService {
	data := memory.Seed()
	return NewPlayerSearchService(
		memory.NewPlayerRepository(data),
		memory.NewGameRepository(data),
		memory.NewValuationRepository(data),
		logging.NewNop(),
	)
}

func TestPlayerSearchService_Search(t *testing.T) {
	svc := newPlayerSearchService()

	rows, err := svc.Search(context.Background(), PlayerSearchInput{
		Season:      2023,
		Nationality: "Chile",
		Position:    player.PositionForward,
		League:      "Primera División",
		MinValueEUR: 1_000_000,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(rows), rows)
	}
	got := rows[0]
	if got.Name != "Damián Pizarro" {
		t.Fatalf("unexpected player: %q", got.Name)
	}
	// the in-season resolution must pick the June observation, not the
	// newer 2024 one
	if got.ValueEUR != 2_000_000 {
		t.Fatalf("unexpected value: %d", got.ValueEUR)
	}
	if got.Club != "CSD Colo-Colo" || got.League != "Primera División" {
		t.Fatalf("unexpected club resolution: %+v", got)
	}
}

func TestPlayerSearchService_Search_LegacyPositionCodeRowsMatch(t *testing.T) {
	svc := newPlayerSearchService()

	// Palacios is stored with the legacy "Attack" code and must still
	// come back for a Forward search.
	rows, err := svc.Search(context.Background(), PlayerSearchInput{
		Season:      2023,
		Nationality: "Chile",
		Position:    player.PositionForward,
		League:      "Primera División",
		MinValueEUR: 0,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Name != "Damián Pizarro" || rows[1].Name != "Carlos Palacios" {
		t.Fatalf("unexpected order: %+v", rows)
	}
	if rows[1].ValueEUR != 800_000 {
		t.Fatalf("unexpected Palacios value: %d", rows[1].ValueEUR)
	}
}

func TestPlayerSearchService_Search_ThresholdIsExclusive(t *testing.T) {
	svc := newPlayerSearchService()

	rows, err := svc.Search(context.Background(), PlayerSearchInput{
		Season:      2023,
		Nationality: "Chile",
		Position:    player.PositionForward,
		League:      "Primera División",
		MinValueEUR: 2_000_000,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows at exact threshold, got %+v", rows)
	}
}

func TestPlayerSearchService_Search_LeagueScopesSeasonClub(t *testing.T) {
	svc := newPlayerSearchService()

	// Brereton Díaz is a Chilean forward but his 2023 appearances are
	// Premier League ones; a Primera División search must not list him.
	rows, err := svc.Search(context.Background(), PlayerSearchInput{
		Season:      2023,
		Nationality: "Chile",
		Position:    player.PositionForward,
		League:      "Premier League",
		MinValueEUR: 0,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Ben Brereton Díaz" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
