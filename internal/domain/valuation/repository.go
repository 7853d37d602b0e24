package valuation

import "context"

// Repository describes read-only valuation fact primitives.
type Repository interface {
	// ListByYear returns valuations observed during the given calendar
	// year.
	ListByYear(ctx context.Context, year int) ([]Valuation, error)

	// ListByPlayers returns the full valuation history of the given
	// players.
	ListByPlayers(ctx context.Context, playerIDs []int64) ([]Valuation, error)

	// ListYears returns the distinct observation years, newest first.
	ListYears(ctx context.Context) ([]int, error)
}
