package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/andesdata/footystats/internal/config"
	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/domain/transfer"
	"github.com/andesdata/footystats/internal/domain/valuation"
	"github.com/andesdata/footystats/internal/infrastructure/repository/memory"
	"github.com/andesdata/footystats/internal/infrastructure/repository/postgres"
	"github.com/andesdata/footystats/internal/interfaces/httpapi"
	"github.com/andesdata/footystats/internal/platform/cache"
	"github.com/andesdata/footystats/internal/platform/logging"
	"github.com/andesdata/footystats/internal/platform/resilience"
	"github.com/andesdata/footystats/internal/usecase"
)

type repositories struct {
	players      player.Repository
	clubs        club.Repository
	competitions competition.Repository
	games        game.Repository
	valuations   valuation.Repository
	transfers    transfer.Repository
}

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP *http.Server

	db *sqlx.DB
}

func NewServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		db    *sqlx.DB
		repos repositories
		err   error
	)
	if cfg.DBURL != "" {
		db, repos, err = newPostgresRepositories(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("report storage ready", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
	} else {
		repos = newMemoryRepositories()
		logger.Info("report storage ready", "backend", "memory")
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.BreakerEnabled,
		FailureThreshold: cfg.BreakerFailureCount,
		OpenTimeout:      cfg.BreakerOpenTimeout,
		HalfOpenMaxReq:   cfg.BreakerHalfOpenMaxReq,
	})
	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		breaker = resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		)
	}

	playerSearchSvc := usecase.NewPlayerSearchService(repos.players, repos.games, repos.valuations, logger)
	transferSvc := usecase.NewTransferService(repos.transfers, repos.clubs, logger)
	comparisonSvc := usecase.NewComparisonService(
		repos.clubs,
		repos.competitions,
		repos.games,
		repos.players,
		repos.valuations,
		logger,
	)
	topScorersSvc := usecase.NewTopScorersService(repos.games, logger)
	lookupSvc := usecase.NewLookupService(
		repos.competitions,
		repos.players,
		repos.clubs,
		repos.games,
		repos.valuations,
		repos.transfers,
		store,
		logger,
	)

	if store != nil {
		go lookupSvc.Prewarm(context.Background(), cfg.LookupPrewarmWorkers)
	}

	handler := httpapi.NewHandler(
		playerSearchSvc,
		transferSvc,
		comparisonSvc,
		topScorersSvc,
		lookupSvc,
		breaker,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db: db,
	}, nil
}

// Close releases resources the server owns besides the HTTP listener.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func newPostgresRepositories(cfg config.Config) (*sqlx.DB, repositories, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, repositories{}, fmt.Errorf("connect database: %w", err)
	}

	return db, repositories{
		players:      postgres.NewPlayerRepository(db),
		clubs:        postgres.NewClubRepository(db),
		competitions: postgres.NewCompetitionRepository(db),
		games:        postgres.NewGameRepository(db),
		valuations:   postgres.NewValuationRepository(db),
		transfers:    postgres.NewTransferRepository(db),
	}, nil
}

func newMemoryRepositories() repositories {
	data := memory.Seed()
	return repositories{
		players:      memory.NewPlayerRepository(data),
		clubs:        memory.NewClubRepository(data),
		competitions: memory.NewCompetitionRepository(data),
		games:        memory.NewGameRepository(data),
		valuations:   memory.NewValuationRepository(data),
		transfers:    memory.NewTransferRepository(data),
	}
}
