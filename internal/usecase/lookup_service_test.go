package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andesdata/footystats/internal/infrastructure/repository/memory"
	"github.com/andesdata/footystats/internal/platform/cache"
	"github.com/andesdata/footystats/internal/platform/logging"
)

func newLookupService(store *cache.Store) *LookupService {
	data := memory.Seed()
	return NewLookupService(
		memory.NewCompetitionRepository(data),
		memory.NewPlayerRepository(data),
		memory.NewClubRepository(data),
		memory.NewGameRepository(data),
		memory.NewValuationRepository(data),
		memory.NewTransferRepository(data),
		store,
		logging.NewNop(),
	)
}

func TestLookupService_DomesticLeagues(t *testing.T) {
	svc := newLookupService(nil)

	leagues, err := svc.DomesticLeagues(context.Background())
	if err != nil {
		t.Fatalf("domestic leagues: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}
	// cup competitions never show up as league filters
	for _, l := range leagues {
		if l == "Copa Chile" {
			t.Fatalf("cup leaked into league lookup: %+v", leagues)
		}
	}
}

func TestLookupService_TransferYearsRespectFeedCutoff(t *testing.T) {
	svc := newLookupService(nil)

	years, err := svc.TransferYears(context.Background())
	if err != nil {
		t.Fatalf("transfer years: %v", err)
	}
	for _, y := range years {
		if y > MaxTransferYear {
			t.Fatalf("year past cutoff in lookup: %+v", years)
		}
	}
	if len(years) == 0 || years[0] != 2024 {
		t.Fatalf("unexpected years: %+v", years)
	}
}

func TestLookupService_ClubsByLeague(t *testing.T) {
	svc := newLookupService(nil)

	options, err := svc.ClubsByLeague(context.Background(), "Primera División")
	if err != nil {
		t.Fatalf("clubs by league: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("unexpected options: %+v", options)
	}
	if options[0].Name != "CD Cobresal" {
		t.Fatalf("unexpected order: %+v", options)
	}
}

func TestLookupService_ClubName(t *testing.T) {
	svc := newLookupService(nil)

	name, err := svc.ClubName(context.Background(), memory.ClubChelsea)
	if err != nil {
		t.Fatalf("club name: %v", err)
	}
	if name != "Chelsea FC" {
		t.Fatalf("unexpected name: %q", name)
	}

	if _, err := svc.ClubName(context.Background(), 999_999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupService_ListsAreCached(t *testing.T) {
	store := cache.NewStore(time.Minute)
	svc := newLookupService(store)

	if _, err := svc.Nationalities(context.Background()); err != nil {
		t.Fatalf("nationalities: %v", err)
	}
	if _, ok := store.Get(context.Background(), "lookup:nationalities"); !ok {
		t.Fatalf("expected nationalities list in cache")
	}
}

func TestLookupService_PrewarmFillsCache(t *testing.T) {
	store := cache.NewStore(time.Minute)
	svc := newLookupService(store)

	svc.Prewarm(context.Background(), 4)

	for _, key := range []string{
		"lookup:leagues",
		"lookup:valuation-years",
		"lookup:seasons",
		"lookup:transfer-years",
		"lookup:nationalities",
		"lookup:positions",
	} {
		if _, ok := store.Get(context.Background(), key); !ok {
			t.Fatalf("expected %s prewarmed", key)
		}
	}
}
