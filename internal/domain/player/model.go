package player

import "strings"

// Position is the canonical position grouping used by report filters.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfield   Position = "Midfield"
	PositionForward    Position = "Forward"
)

// positionAliases maps legacy source codes onto canonical positions.
// Older rows in the dataset still carry "Attack" and "Midfielder".
var positionAliases = map[string]Position{
	"Attack":     PositionForward,
	"Midfielder": PositionMidfield,
}

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfield:   {},
	PositionForward:    {},
}

// NormalizePosition resolves raw position input (canonical or legacy
// alias) to a canonical Position. ok is false for unknown codes.
func NormalizePosition(raw string) (Position, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	if alias, ok := positionAliases[value]; ok {
		return alias, true
	}
	p := Position(value)
	if _, ok := AllPositions[p]; ok {
		return p, true
	}
	return "", false
}

// MatchCodes returns every raw position code that resolves to p,
// canonical spelling included. Fact rows keep their original codes, so
// position filters must match the whole alias set.
func MatchCodes(p Position) []string {
	codes := []string{string(p)}
	for raw, canonical := range positionAliases {
		if canonical == p {
			codes = append(codes, raw)
		}
	}
	return codes
}

// Player is one athlete row from the players fact table.
// CurrentClubID is a weak reference maintained by the upstream ETL and
// may lag behind the appearance history; season-scoped reports resolve
// the club from appearances instead.
type Player struct {
	ID            int64
	Name          string
	Nationality   string
	Position      string
	CurrentClubID *int64
}

// CanonicalPosition resolves the stored raw code, when it is known.
func (p Player) CanonicalPosition() (Position, bool) {
	return NormalizePosition(p.Position)
}
