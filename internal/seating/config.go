package seating

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Placement says how the two members of a companion pair should be seated.
type Placement string

const (
	// PlaceNextTo seats companions in adjacent seats.
	PlaceNextTo Placement = "next-to"
	// PlaceAcross seats companions opposite each other.
	PlaceAcross Placement = "across"
	// PlaceNone ignores companion links; every guest is seated alone.
	PlaceNone Placement = "none"
)

// ParsePlacement accepts "next-to", "across" or "none" (also "nextto",
// "next_to", "opposite" and the empty string for none).
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next-to", "nextto", "next_to", "adjacent":
		return PlaceNextTo, nil
	case "across", "opposite":
		return PlaceAcross, nil
	case "none", "":
		return PlaceNone, nil
	}
	return "", fmt.Errorf("unknown companion placement %q", s)
}

func (p Placement) pairsCompanions() bool {
	return p == PlaceNextTo || p == PlaceAcross
}

// Config controls one Assign run. The zero value seats guests sequentially,
// in name order, without companion pairing.
type Config struct {
	BalanceGuests bool
	Randomize     bool
	Placement     Placement

	// Rand drives shuffling when Randomize is set. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Logger receives one debug record per run. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig balances guests across tables, in name order, with
// companions seated next to each other.
func DefaultConfig() Config {
	return Config{
		BalanceGuests: true,
		Placement:     PlaceNextTo,
	}
}
