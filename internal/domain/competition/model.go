package competition

// TypeDomesticLeague marks a country's primary league competition.
// Cups and international tournaments carry other type values and are
// never selectable as a report league filter.
const TypeDomesticLeague = "domestic_league"

// Competition is one competition row from the competitions fact table.
type Competition struct {
	ID   string
	Name string
	Type string
}

func (c Competition) IsDomesticLeague() bool {
	return c.Type == TypeDomesticLeague
}
