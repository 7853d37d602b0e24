package postgres

import (
	"time"

	"github.com/andesdata/footystats/internal/domain/game"
)

type gameTableModel struct {
	GameID        int64     `db:"game_id"`
	Season        int       `db:"season"`
	CompetitionID string    `db:"competition_id"`
	HomeClubID    int64     `db:"home_club_id"`
	AwayClubID    int64     `db:"away_club_id"`
	HomeGoals     int       `db:"home_club_goals"`
	AwayGoals     int       `db:"away_club_goals"`
	Date          time.Time `db:"date"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:            m.GameID,
		Season:        m.Season,
		CompetitionID: m.CompetitionID,
		HomeClubID:    m.HomeClubID,
		AwayClubID:    m.AwayClubID,
		HomeGoals:     m.HomeGoals,
		AwayGoals:     m.AwayGoals,
		Date:          m.Date,
	}
}

type seasonAppearanceTableModel struct {
	PlayerID   int64     `db:"player_id"`
	PlayerName string    `db:"player_name"`
	ClubID     int64     `db:"player_club_id"`
	ClubName   string    `db:"club_name"`
	LeagueName string    `db:"league_name"`
	GameDate   time.Time `db:"game_date"`
	Goals      int       `db:"goals"`
}

func (m seasonAppearanceTableModel) toDomain() game.SeasonAppearance {
	return game.SeasonAppearance{
		PlayerID:   m.PlayerID,
		PlayerName: m.PlayerName,
		ClubID:     m.ClubID,
		ClubName:   m.ClubName,
		LeagueName: m.LeagueName,
		GameDate:   m.GameDate,
		Goals:      m.Goals,
	}
}
