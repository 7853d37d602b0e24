package transfer

import "context"

// Repository describes read-only transfer fact primitives.
type Repository interface {
	// ListByYear returns transfers dated within the given calendar
	// year.
	ListByYear(ctx context.Context, year int) ([]Transfer, error)

	// ListYears returns the distinct transfer years up to and
	// including maxYear, newest first.
	ListYears(ctx context.Context, maxYear int) ([]int, error)
}
