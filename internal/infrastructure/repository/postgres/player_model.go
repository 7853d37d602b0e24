package postgres

import (
	"database/sql"

	"github.com/andesdata/footystats/internal/domain/player"
)

type playerTableModel struct {
	PlayerID      int64          `db:"player_id"`
	Name          string         `db:"name"`
	Nationality   sql.NullString `db:"country_of_citizenship"`
	Position      sql.NullString `db:"position"`
	CurrentClubID sql.NullInt64  `db:"current_club_id"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.PlayerID,
		Name:          m.Name,
		Nationality:   m.Nationality.String,
		Position:      m.Position.String,
		CurrentClubID: int64Ptr(m.CurrentClubID),
	}
}
