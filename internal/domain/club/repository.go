package club

import "context"

// Repository describes read-only club fact primitives.
type Repository interface {
	// GetByID returns the club with the given id; found is false when
	// the id is unknown.
	GetByID(ctx context.Context, id int64) (c Club, found bool, err error)

	// ListByNames returns the clubs matching the given names exactly.
	ListByNames(ctx context.Context, names []string) ([]Club, error)

	// ListByLeague returns the clubs whose domestic competition is the
	// named domestic league, sorted by club name.
	ListByLeague(ctx context.Context, leagueName string) ([]Club, error)

	// ListDomesticAffiliations returns the club to domestic-league
	// mapping for every club attached to a domestic_league competition.
	ListDomesticAffiliations(ctx context.Context) ([]LeagueAffiliation, error)
}
