package usecase

import "errors"

var (
	// ErrIncompleteFilters: one or more required filter fields are
	// blank. Reported as a single message without naming fields.
	ErrIncompleteFilters = errors.New("all filter fields are required")

	// ErrInvalidValue: a filter field failed type coercion or domain
	// membership; the wrapping message names the field.
	ErrInvalidValue = errors.New("invalid filter value")

	// ErrInvalidCombination: the filter fields are individually valid
	// but semantically conflicting (e.g. comparing a club to itself).
	ErrInvalidCombination = errors.New("invalid filter combination")

	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
