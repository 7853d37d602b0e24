package memory

import (
	"time"

	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/domain/transfer"
	"github.com/andesdata/footystats/internal/domain/valuation"
)

// Well-known seed identifiers, shared by tests and demo mode.
const (
	CompetitionPrimeraDivision = "CL1"
	CompetitionPremierLeague   = "GB1"
	CompetitionCopaChile       = "CLC"

	ClubColoColo  int64 = 1001
	ClubUDeChile  int64 = 1002
	ClubCobresal  int64 = 1003
	ClubChelsea   int64 = 631
	ClubArsenal   int64 = 11
	ClubBrighton  int64 = 1237
	PlayerPizarro int64 = 70001
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func ref(v int64) *int64 { return &v }

// Seed returns a small but relationally complete snapshot of the fact
// tables: two leagues, a cup, mid-season valuation histories, a 2022
// and a 2023 competition cycle, and a handful of transfers straddling
// the feed cutoff.
func Seed() *Dataset {
	return &Dataset{
		Competitions: []competition.Competition{
			{ID: CompetitionPrimeraDivision, Name: "Primera División", Type: competition.TypeDomesticLeague},
			{ID: CompetitionPremierLeague, Name: "Premier League", Type: competition.TypeDomesticLeague},
			{ID: CompetitionCopaChile, Name: "Copa Chile", Type: "domestic_cup"},
		},
		Clubs: []club.Club{
			{ID: ClubColoColo, Name: "CSD Colo-Colo", DomesticCompetitionID: CompetitionPrimeraDivision},
			{ID: ClubUDeChile, Name: "Universidad de Chile", DomesticCompetitionID: CompetitionPrimeraDivision},
			{ID: ClubCobresal, Name: "CD Cobresal", DomesticCompetitionID: CompetitionPrimeraDivision},
			{ID: ClubChelsea, Name: "Chelsea FC", DomesticCompetitionID: CompetitionPremierLeague},
			{ID: ClubArsenal, Name: "Arsenal FC", DomesticCompetitionID: CompetitionPremierLeague},
			{ID: ClubBrighton, Name: "Brighton & Hove Albion", DomesticCompetitionID: CompetitionPremierLeague},
		},
		Players: []player.Player{
			{ID: PlayerPizarro, Name: "Damián Pizarro", Nationality: "Chile", Position: "Forward", CurrentClubID: ref(ClubColoColo)},
			// legacy "Attack" code, still present on older rows
			{ID: 70002, Name: "Carlos Palacios", Nationality: "Chile", Position: "Attack", CurrentClubID: ref(ClubColoColo)},
			{ID: 70003, Name: "Lucas Assadi", Nationality: "Chile", Position: "Midfield", CurrentClubID: ref(ClubUDeChile)},
			{ID: 70004, Name: "Ben Brereton Díaz", Nationality: "Chile", Position: "Forward", CurrentClubID: ref(ClubChelsea)},
			{ID: 70005, Name: "Enzo Fernández", Nationality: "Argentina", Position: "Midfield", CurrentClubID: ref(ClubChelsea)},
			{ID: 70006, Name: "Diego Coelho", Nationality: "Uruguay", Position: "Forward", CurrentClubID: ref(ClubCobresal)},
			{ID: 70007, Name: "Matías Marín", Nationality: "Chile", Position: "Defender", CurrentClubID: ref(ClubCobresal)},
		},
		Games: []game.Game{
			// Primera División 2023: Colo-Colo plays three times,
			// Universidad de Chile not at all.
			{ID: 90001, Season: 2023, CompetitionID: CompetitionPrimeraDivision, HomeClubID: ClubColoColo, AwayClubID: ClubCobresal, HomeGoals: 3, AwayGoals: 1, Date: day(2023, 4, 15)},
			{ID: 90002, Season: 2023, CompetitionID: CompetitionPrimeraDivision, HomeClubID: ClubCobresal, AwayClubID: ClubColoColo, HomeGoals: 2, AwayGoals: 2, Date: day(2023, 7, 2)},
			{ID: 90003, Season: 2023, CompetitionID: CompetitionPrimeraDivision, HomeClubID: ClubColoColo, AwayClubID: ClubCobresal, HomeGoals: 1, AwayGoals: 0, Date: day(2023, 10, 21)},
			// Primera División 2022
			{ID: 90004, Season: 2022, CompetitionID: CompetitionPrimeraDivision, HomeClubID: ClubUDeChile, AwayClubID: ClubColoColo, HomeGoals: 1, AwayGoals: 2, Date: day(2022, 5, 8)},
			// Premier League 2023
			{ID: 90005, Season: 2023, CompetitionID: CompetitionPremierLeague, HomeClubID: ClubChelsea, AwayClubID: ClubArsenal, HomeGoals: 1, AwayGoals: 0, Date: day(2023, 9, 2)},
			// Copa Chile 2023: never selectable as a league filter
			{ID: 90006, Season: 2023, CompetitionID: CompetitionCopaChile, HomeClubID: ClubUDeChile, AwayClubID: ClubCobresal, HomeGoals: 0, AwayGoals: 1, Date: day(2023, 3, 5)},
		},
		Appearances: []game.Appearance{
			{GameID: 90001, PlayerID: PlayerPizarro, ClubID: ClubColoColo, Goals: 2},
			{GameID: 90002, PlayerID: PlayerPizarro, ClubID: ClubColoColo, Goals: 1},
			{GameID: 90003, PlayerID: PlayerPizarro, ClubID: ClubColoColo, Goals: 1},
			{GameID: 90001, PlayerID: 70002, ClubID: ClubColoColo, Goals: 1},
			{GameID: 90003, PlayerID: 70002, ClubID: ClubColoColo, Goals: 0},
			{GameID: 90001, PlayerID: 70006, ClubID: ClubCobresal, Goals: 1},
			{GameID: 90002, PlayerID: 70006, ClubID: ClubCobresal, Goals: 2},
			{GameID: 90004, PlayerID: 70003, ClubID: ClubUDeChile, Goals: 1},
			{GameID: 90005, PlayerID: 70004, ClubID: ClubChelsea, Goals: 1},
			{GameID: 90005, PlayerID: 70005, ClubID: ClubChelsea, Goals: 0},
			{GameID: 90006, PlayerID: 70006, ClubID: ClubCobresal, Goals: 1},
		},
		Valuations: []valuation.Valuation{
			// Pizarro: two 2023 observations plus a newer all-time one;
			// season-scoped reports must pick the June 2023 row.
			{PlayerID: PlayerPizarro, Date: day(2023, 2, 1), MarketValueEUR: 1_500_000},
			{PlayerID: PlayerPizarro, Date: day(2023, 6, 30), MarketValueEUR: 2_000_000},
			{PlayerID: PlayerPizarro, Date: day(2024, 2, 1), MarketValueEUR: 3_500_000},
			{PlayerID: 70002, Date: day(2023, 5, 1), MarketValueEUR: 800_000},
			{PlayerID: 70004, Date: day(2023, 8, 1), MarketValueEUR: 14_000_000},
			{PlayerID: 70005, Date: day(2022, 6, 1), MarketValueEUR: 28_000_000},
			{PlayerID: 70005, Date: day(2023, 6, 1), MarketValueEUR: 40_000_000},
			{PlayerID: 70006, Date: day(2023, 3, 1), MarketValueEUR: 1_200_000},
			{PlayerID: 70007, Date: day(2022, 7, 1), MarketValueEUR: 900_000},
		},
		Transfers: []transfer.Transfer{
			{PlayerName: "Moisés Caicedo", Date: day(2023, 8, 14), FeeEUR: ref(116_000_000), FromClubID: ref(ClubBrighton), ToClubID: ref(ClubChelsea)},
			{PlayerName: "Kai Havertz", Date: day(2023, 6, 28), FeeEUR: ref(75_000_000), FromClubID: ref(ClubChelsea), ToClubID: ref(ClubArsenal)},
			// from-club unknown to the dataset: only the to-side league resolves
			{PlayerName: "Declan Rice", Date: day(2023, 7, 15), FeeEUR: ref(105_000_000), FromClubID: ref(389), ToClubID: ref(ClubArsenal)},
			{PlayerName: "Raheem Sterling", Date: day(2022, 7, 19), FeeEUR: ref(56_200_000), FromClubID: ref(281), ToClubID: ref(ClubChelsea)},
			// free transfer, no fee recorded
			{PlayerName: "Matías Marín", Date: day(2023, 1, 10), FeeEUR: nil, FromClubID: ref(ClubUDeChile), ToClubID: ref(ClubCobresal)},
			{PlayerName: "Damián Pizarro", Date: day(2024, 1, 10), FeeEUR: ref(3_500_000), FromClubID: ref(ClubColoColo), ToClubID: ref(398)},
		},
	}
}
