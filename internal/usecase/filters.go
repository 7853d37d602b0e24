package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andesdata/footystats/internal/domain/player"
)

// MaxTransferYear is the completeness cutoff of the transfer feed.
// Years beyond it exist in no fact row, so requesting them yields an
// empty report rather than a validation failure.
const MaxTransferYear = 2024

// TransferDirection filters transfers relative to the requested club.
type TransferDirection string

const (
	DirectionIncoming TransferDirection = "in"
	DirectionOutgoing TransferDirection = "out"
	DirectionBoth     TransferDirection = "both"
)

// TransferSortKey selects the ordering column of a transfer report.
type TransferSortKey string

const (
	SortByFee  TransferSortKey = "fee"
	SortByDate TransferSortKey = "date"
)

// SortDirection orders top-scorer rankings.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Legacy form values from the original reporting UI remain accepted on
// the wire and normalize onto the canonical enums.
var transferDirectionAliases = map[string]TransferDirection{
	"in": DirectionIncoming, "entrada": DirectionIncoming,
	"out": DirectionOutgoing, "salida": DirectionOutgoing,
	"both": DirectionBoth, "ambos": DirectionBoth,
}

var transferSortKeyAliases = map[string]TransferSortKey{
	"fee": SortByFee, "valor": SortByFee,
	"date": SortByDate, "fecha": SortByDate,
}

type PlayerSearchInput struct {
	Season      int             `validate:"gt=0"`
	Nationality string          `validate:"required"`
	Position    player.Position `validate:"required"`
	League      string          `validate:"required"`
	MinValueEUR float64         `validate:"gte=0"`
}

type TransferSearchInput struct {
	Year      int               `validate:"gt=0"`
	League    string            `validate:"required"`
	ClubID    int64             `validate:"gt=0"`
	Direction TransferDirection `validate:"oneof=in out both"`
	SortKey   TransferSortKey   `validate:"oneof=fee date"`
}

type ComparisonInput struct {
	Season int    `validate:"gt=0"`
	League string `validate:"required"`
	ClubA  string `validate:"required"`
	ClubB  string `validate:"required,nefield=ClubA"`
}

type TopScorersInput struct {
	League    string        `validate:"required"`
	Season    int           `validate:"gt=0"`
	Direction SortDirection `validate:"oneof=asc desc"`
	Limit     int           `validate:"gt=0"`
}

var filterValidator = validator.New(validator.WithRequiredStructEnabled())

// ParsePlayerSearchInput coerces raw form values into a typed player
// search filter. Expected keys: season, nationality, position, league,
// minValue.
func ParsePlayerSearchInput(raw map[string]string) (PlayerSearchInput, error) {
	var in PlayerSearchInput
	if err := requireAll(raw, "season", "nationality", "position", "league", "minValue"); err != nil {
		return in, err
	}

	season, err := intField(raw, "season")
	if err != nil {
		return in, err
	}
	minValue, err := floatField(raw, "minValue")
	if err != nil {
		return in, err
	}
	position, ok := player.NormalizePosition(raw["position"])
	if !ok {
		return in, fmt.Errorf("%w: position %q", ErrInvalidValue, raw["position"])
	}

	in = PlayerSearchInput{
		Season:      season,
		Nationality: strings.TrimSpace(raw["nationality"]),
		Position:    position,
		League:      strings.TrimSpace(raw["league"]),
		MinValueEUR: minValue,
	}
	return in, checkStruct(in)
}

// ParseTransferSearchInput coerces raw form values into a typed
// transfer search filter. Expected keys: year, league, clubId,
// direction, sortKey.
func ParseTransferSearchInput(raw map[string]string) (TransferSearchInput, error) {
	var in TransferSearchInput
	if err := requireAll(raw, "year", "league", "clubId", "direction", "sortKey"); err != nil {
		return in, err
	}

	year, err := intField(raw, "year")
	if err != nil {
		return in, err
	}
	clubID, err := intField(raw, "clubId")
	if err != nil {
		return in, err
	}
	direction, ok := transferDirectionAliases[strings.ToLower(strings.TrimSpace(raw["direction"]))]
	if !ok {
		return in, fmt.Errorf("%w: direction %q", ErrInvalidValue, raw["direction"])
	}
	sortKey, ok := transferSortKeyAliases[strings.ToLower(strings.TrimSpace(raw["sortKey"]))]
	if !ok {
		return in, fmt.Errorf("%w: sortKey %q", ErrInvalidValue, raw["sortKey"])
	}

	in = TransferSearchInput{
		Year:      year,
		League:    strings.TrimSpace(raw["league"]),
		ClubID:    int64(clubID),
		Direction: direction,
		SortKey:   sortKey,
	}
	return in, checkStruct(in)
}

// ParseComparisonInput coerces raw form values into a typed club
// comparison filter. Expected keys: season, league, clubA, clubB.
func ParseComparisonInput(raw map[string]string) (ComparisonInput, error) {
	var in ComparisonInput
	if err := requireAll(raw, "season", "league", "clubA", "clubB"); err != nil {
		return in, err
	}

	season, err := intField(raw, "season")
	if err != nil {
		return in, err
	}

	in = ComparisonInput{
		Season: season,
		League: strings.TrimSpace(raw["league"]),
		ClubA:  strings.TrimSpace(raw["clubA"]),
		ClubB:  strings.TrimSpace(raw["clubB"]),
	}
	return in, checkStruct(in)
}

// ParseTopScorersInput coerces raw form values into a typed top-scorer
// ranking filter. Expected keys: league, season, direction, limit.
func ParseTopScorersInput(raw map[string]string) (TopScorersInput, error) {
	var in TopScorersInput
	if err := requireAll(raw, "league", "season", "direction", "limit"); err != nil {
		return in, err
	}

	season, err := intField(raw, "season")
	if err != nil {
		return in, err
	}
	limit, err := intField(raw, "limit")
	if err != nil {
		return in, err
	}

	direction := SortDirection(strings.ToLower(strings.TrimSpace(raw["direction"])))
	if direction != SortAscending && direction != SortDescending {
		return in, fmt.Errorf("%w: direction %q", ErrInvalidValue, raw["direction"])
	}

	in = TopScorersInput{
		League:    strings.TrimSpace(raw["league"]),
		Season:    season,
		Direction: direction,
		Limit:     limit,
	}
	return in, checkStruct(in)
}

func requireAll(raw map[string]string, fields ...string) error {
	for _, field := range fields {
		if strings.TrimSpace(raw[field]) == "" {
			return ErrIncompleteFilters
		}
	}
	return nil
}

func intField(raw map[string]string, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw[field]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidValue, field, raw[field])
	}
	return value, nil
}

func floatField(raw map[string]string, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw[field]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", ErrInvalidValue, field, raw[field])
	}
	return value, nil
}

func checkStruct(in any) error {
	err := filterValidator.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		if first.Tag() == "nefield" {
			return fmt.Errorf("%w: %s must differ from %s", ErrInvalidCombination, first.Field(), first.Param())
		}
		return fmt.Errorf("%w: %s", ErrInvalidValue, first.Field())
	}
	return fmt.Errorf("%w: %v", ErrInvalidValue, err)
}
