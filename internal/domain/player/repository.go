package player

import "context"

// Repository describes the read-only player fact primitives the report
// builders need. The backing tables are append-only; nothing here writes.
type Repository interface {
	// ListByNationalityAndPosition returns players of the given
	// nationality whose raw position code resolves to position
	// (legacy aliases included).
	ListByNationalityAndPosition(ctx context.Context, nationality string, position Position) ([]Player, error)

	// ListByCurrentClubs returns players whose current-club reference
	// points at one of the given clubs.
	ListByCurrentClubs(ctx context.Context, clubIDs []int64) ([]Player, error)

	// ListNationalities returns the distinct non-empty nationality
	// values, sorted ascending.
	ListNationalities(ctx context.Context) ([]string, error)

	// ListPositions returns the distinct raw position codes, sorted
	// ascending.
	ListPositions(ctx context.Context) ([]string, error)
}
