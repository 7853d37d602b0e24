package game

import "context"

// Repository describes read-only game and appearance fact primitives.
type Repository interface {
	// ListBySeasonAndCompetition returns every game of one competition
	// cycle.
	ListBySeasonAndCompetition(ctx context.Context, season int, competitionID string) ([]Game, error)

	// ListSeasonAppearances returns all appearances within a season,
	// joined to game date, club name and competition name.
	ListSeasonAppearances(ctx context.Context, season int) ([]SeasonAppearance, error)

	// ListLeagueAppearances narrows ListSeasonAppearances to games of
	// one named competition.
	ListLeagueAppearances(ctx context.Context, leagueName string, season int) ([]SeasonAppearance, error)

	// ListSeasons returns the distinct played seasons, newest first.
	ListSeasons(ctx context.Context) ([]int, error)
}
