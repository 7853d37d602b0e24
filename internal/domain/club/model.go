package club

// Club is one club row from the clubs fact table.
type Club struct {
	ID                    int64
	Name                  string
	DomesticCompetitionID string
}

// LeagueAffiliation links a club to the name of its domestic league.
// Clubs whose domestic competition is not a domestic league do not
// appear in affiliation listings.
type LeagueAffiliation struct {
	ClubID     int64
	ClubName   string
	LeagueName string
}
