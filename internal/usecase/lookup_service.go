package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/domain/transfer"
	"github.com/andesdata/footystats/internal/domain/valuation"
	"github.com/andesdata/footystats/internal/platform/cache"
	"github.com/andesdata/footystats/internal/platform/logging"
)

// ClubOption is one selectable club of a league.
type ClubOption struct {
	ID   int64
	Name string
}

// LookupService serves the filter-domain lists the report forms are
// populated from. The lists are plain projections over the fact store
// and change only on ETL refresh, so they sit behind the TTL cache.
type LookupService struct {
	competitions competition.Repository
	players      player.Repository
	clubs        club.Repository
	games        game.Repository
	valuations   valuation.Repository
	transfers    transfer.Repository
	cache        *cache.Store
	logger       *logging.Logger
}

func NewLookupService(
	competitions competition.Repository,
	players player.Repository,
	clubs club.Repository,
	games game.Repository,
	valuations valuation.Repository,
	transfers transfer.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *LookupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LookupService{
		competitions: competitions,
		players:      players,
		clubs:        clubs,
		games:        games,
		valuations:   valuations,
		transfers:    transfers,
		cache:        store,
		logger:       logger,
	}
}

func (s *LookupService) DomesticLeagues(ctx context.Context) ([]string, error) {
	return cachedList(ctx, s.cache, "lookup:leagues", func(ctx context.Context) ([]string, error) {
		leagues, err := s.competitions.ListDomesticLeagues(ctx)
		if err != nil {
			return nil, fmt.Errorf("list domestic leagues: %w", err)
		}
		names := make([]string, 0, len(leagues))
		for _, l := range leagues {
			names = append(names, l.Name)
		}
		return names, nil
	})
}

func (s *LookupService) ValuationYears(ctx context.Context) ([]int, error) {
	return cachedList(ctx, s.cache, "lookup:valuation-years", s.valuations.ListYears)
}

func (s *LookupService) PlayedSeasons(ctx context.Context) ([]int, error) {
	return cachedList(ctx, s.cache, "lookup:seasons", s.games.ListSeasons)
}

func (s *LookupService) TransferYears(ctx context.Context) ([]int, error) {
	return cachedList(ctx, s.cache, "lookup:transfer-years", func(ctx context.Context) ([]int, error) {
		return s.transfers.ListYears(ctx, MaxTransferYear)
	})
}

func (s *LookupService) Nationalities(ctx context.Context) ([]string, error) {
	return cachedList(ctx, s.cache, "lookup:nationalities", s.players.ListNationalities)
}

// Positions returns the distinct raw position codes as stored,
// legacy aliases included; the caller decides how to label them.
func (s *LookupService) Positions(ctx context.Context) ([]string, error) {
	return cachedList(ctx, s.cache, "lookup:positions", s.players.ListPositions)
}

func (s *LookupService) ClubsByLeague(ctx context.Context, league string) ([]ClubOption, error) {
	key := "lookup:clubs:" + league
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]ClubOption, error) {
		clubs, err := s.clubs.ListByLeague(ctx, league)
		if err != nil {
			return nil, fmt.Errorf("list clubs of %q: %w", league, err)
		}
		options := make([]ClubOption, 0, len(clubs))
		for _, c := range clubs {
			options = append(options, ClubOption{ID: c.ID, Name: c.Name})
		}
		return options, nil
	})
}

func (s *LookupService) ClubName(ctx context.Context, clubID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.ClubName")
	defer span.End()

	c, found, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return "", fmt.Errorf("get club %d: %w", clubID, err)
	}
	if !found {
		return "", fmt.Errorf("%w: club %d", ErrNotFound, clubID)
	}
	return c.Name, nil
}

// Prewarm loads the static filter domains through a bounded worker
// pool so the first form render after startup hits warm cache entries.
// Failures are logged and retried lazily on first use; prewarm never
// fails startup.
func (s *LookupService) Prewarm(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 2
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup prewarm pool unavailable", "error", err)
		return
	}
	defer pool.Release()

	loaders := map[string]func(context.Context) error{
		"leagues":        func(ctx context.Context) error { _, err := s.DomesticLeagues(ctx); return err },
		"valuationYears": func(ctx context.Context) error { _, err := s.ValuationYears(ctx); return err },
		"seasons":        func(ctx context.Context) error { _, err := s.PlayedSeasons(ctx); return err },
		"transferYears":  func(ctx context.Context) error { _, err := s.TransferYears(ctx); return err },
		"nationalities":  func(ctx context.Context) error { _, err := s.Nationalities(ctx); return err },
		"positions":      func(ctx context.Context) error { _, err := s.Positions(ctx); return err },
	}

	var wg sync.WaitGroup
	for name, loader := range loaders {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := loader(ctx); err != nil {
				s.logger.WarnContext(ctx, "lookup prewarm failed", "lookup", name, "error", err)
			}
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "lookup prewarm submit failed", "lookup", name, "error", submitErr)
		}
	}
	wg.Wait()
}

func cachedList[T any](ctx context.Context, store *cache.Store, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	if store == nil {
		return loader(ctx)
	}
	value, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}
	list, ok := value.([]T)
	if !ok {
		// stale entry of another shape under the same key
		return loader(ctx)
	}
	return list, nil
}
