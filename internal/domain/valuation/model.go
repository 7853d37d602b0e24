package valuation

import "time"

// Valuation is one market-value observation from the player_valuations
// fact table. Rows are append-only; a player accumulates many over
// time and "current value" is always resolved latest-as-of.
type Valuation struct {
	PlayerID       int64
	Date           time.Time
	MarketValueEUR int64
}
