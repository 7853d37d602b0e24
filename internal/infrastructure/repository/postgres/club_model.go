package postgres

import "github.com/andesdata/footystats/internal/domain/club"

type clubTableModel struct {
	ClubID                int64  `db:"club_id"`
	Name                  string `db:"name"`
	DomesticCompetitionID string `db:"domestic_competition_id"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:                    m.ClubID,
		Name:                  m.Name,
		DomesticCompetitionID: m.DomesticCompetitionID,
	}
}

type affiliationTableModel struct {
	ClubID     int64  `db:"club_id"`
	ClubName   string `db:"club_name"`
	LeagueName string `db:"league_name"`
}
