package game

import "time"

// Game is one match row from the games fact table. Season is an
// integer competition cycle, distinct from the calendar year of Date.
type Game struct {
	ID            int64
	Season        int
	CompetitionID string
	HomeClubID    int64
	AwayClubID    int64
	HomeGoals     int
	AwayGoals     int
	Date          time.Time
}

// GoalsFor returns the goals scored by clubID in this game. played is
// false when the club took part in neither side.
func (g Game) GoalsFor(clubID int64) (goals int, played bool) {
	switch clubID {
	case g.HomeClubID:
		return g.HomeGoals, true
	case g.AwayClubID:
		return g.AwayGoals, true
	default:
		return 0, false
	}
}

// GoalsAgainst returns the goals conceded by clubID in this game.
func (g Game) GoalsAgainst(clubID int64) (goals int, played bool) {
	switch clubID {
	case g.HomeClubID:
		return g.AwayGoals, true
	case g.AwayClubID:
		return g.HomeGoals, true
	default:
		return 0, false
	}
}

// Appearance is one player-in-game row from the appearances fact
// table. ClubID is the club the player represented in that game, which
// is the authoritative club reference within a season.
type Appearance struct {
	GameID   int64
	PlayerID int64
	ClubID   int64
	Goals    int
}

// SeasonAppearance is an appearance joined to its game, club and
// competition. It is the fetch shape the season-scoped builders
// consume: the club actually played for, the league that club's game
// belonged to, and the game date used for latest-as-of resolution.
type SeasonAppearance struct {
	PlayerID   int64
	PlayerName string
	ClubID     int64
	ClubName   string
	LeagueName string
	GameDate   time.Time
	Goals      int
}
