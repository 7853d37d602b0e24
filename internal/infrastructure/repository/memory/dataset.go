package memory

import (
	"github.com/andesdata/footystats/internal/domain/club"
	"github.com/andesdata/footystats/internal/domain/competition"
	"github.com/andesdata/footystats/internal/domain/game"
	"github.com/andesdata/footystats/internal/domain/player"
	"github.com/andesdata/footystats/internal/domain/transfer"
	"github.com/andesdata/footystats/internal/domain/valuation"
)

// Dataset is an in-memory snapshot of the six fact tables. It backs
// the memory repositories used by tests and by demo mode when no
// database is configured. The engine never mutates it after load.
type Dataset struct {
	Players      []player.Player
	Clubs        []club.Club
	Competitions []competition.Competition
	Games        []game.Game
	Appearances  []game.Appearance
	Valuations   []valuation.Valuation
	Transfers    []transfer.Transfer
}

func (d *Dataset) gameByID(id int64) (game.Game, bool) {
	for _, g := range d.Games {
		if g.ID == id {
			return g, true
		}
	}
	return game.Game{}, false
}

func (d *Dataset) clubByID(id int64) (club.Club, bool) {
	for _, c := range d.Clubs {
		if c.ID == id {
			return c, true
		}
	}
	return club.Club{}, false
}

func (d *Dataset) competitionByID(id string) (competition.Competition, bool) {
	for _, c := range d.Competitions {
		if c.ID == id {
			return c, true
		}
	}
	return competition.Competition{}, false
}

func (d *Dataset) playerByID(id int64) (player.Player, bool) {
	for _, p := range d.Players {
		if p.ID == id {
			return p, true
		}
	}
	return player.Player{}, false
}
