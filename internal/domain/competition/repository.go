package competition

import "context"

// Repository describes read-only competition fact primitives.
type Repository interface {
	// ListDomesticLeagues returns competitions of type domestic_league,
	// sorted by name.
	ListDomesticLeagues(ctx context.Context) ([]Competition, error)

	// GetDomesticLeagueByName returns the domestic league with the
	// given name; found is false when no such league exists.
	GetDomesticLeagueByName(ctx context.Context, name string) (c Competition, found bool, err error)
}
