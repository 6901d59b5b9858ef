package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidGuest is returned when a guest fails validation.
var ErrInvalidGuest = errors.New("invalid guest")

// DietaryRestriction is a dietary tag attached to a guest.
type DietaryRestriction string

const (
	DietVegetarian        DietaryRestriction = "VEGETARIAN"
	DietVegan             DietaryRestriction = "VEGAN"
	DietPescatarian       DietaryRestriction = "PESCATARIAN"
	DietLactoseIntolerant DietaryRestriction = "LACTOSE_INTOLERANT"
	DietNone              DietaryRestriction = "NONE"
)

var dietaryLabels = map[DietaryRestriction]string{
	DietVegetarian:        "Vegetarian",
	DietVegan:             "Vegan",
	DietPescatarian:       "Pescatarian",
	DietLactoseIntolerant: "Lactose Intolerant",
	DietNone:              "None",
}

// Label returns the human-readable name of the restriction.
func (d DietaryRestriction) Label() string {
	if l, ok := dietaryLabels[d]; ok {
		return l
	}
	return string(d)
}

// ParseDietaryRestriction accepts either the tag ("VEGAN") or its label ("Vegan").
func ParseDietaryRestriction(s string) (DietaryRestriction, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	d := DietaryRestriction(norm)
	if _, ok := dietaryLabels[d]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown dietary restriction %q", s)
}

// Guest represents an invited person.
type Guest struct {
	// ID is the unique identifier for the guest (UUID format).
	ID string `json:"id" yaml:"id"`

	// Name is the display name, also used for alphabetical seating order.
	Name string `json:"name" yaml:"name"`

	// DietaryRestrictions is treated as a set; duplicates are tolerated.
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions" yaml:"dietaryRestrictions,omitempty"`

	// AssignedTableID is the table the guest sits at, empty when unseated.
	AssignedTableID string `json:"assignedTableId" yaml:"assignedTableId,omitempty"`

	// SeatPosition indexes into the assigned table's seats.
	// It is nil whenever AssignedTableID is empty.
	SeatPosition *int `json:"seatPosition" yaml:"seatPosition,omitempty"`

	// GuestOf is the ID of the host when this guest is a companion.
	// Dangling references are allowed and mean "no host".
	GuestOf string `json:"guestOf" yaml:"guestOf,omitempty"`

	// CreatedAt is the Unix timestamp when the guest was added.
	CreatedAt int64 `json:"createdAt" yaml:"createdAt,omitempty"`
}

// NewGuest creates an unseated guest with a fresh ID.
func NewGuest(name string, restrictions ...DietaryRestriction) Guest {
	return Guest{
		ID:                  uuid.New().String(),
		Name:                name,
		DietaryRestrictions: restrictions,
		CreatedAt:           time.Now().Unix(),
	}
}

// IsAssigned reports whether the guest holds a seat.
func (g Guest) IsAssigned() bool {
	return g.AssignedTableID != ""
}

// ClearAssignment removes any seat assignment from the guest.
func (g *Guest) ClearAssignment() {
	g.AssignedTableID = ""
	g.SeatPosition = nil
}

// HasRestriction reports whether the guest carries the given dietary tag.
func (g Guest) HasRestriction(d DietaryRestriction) bool {
	for _, r := range g.DietaryRestrictions {
		if r == d {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the guest.
func (g Guest) Clone() Guest {
	out := g
	if g.DietaryRestrictions != nil {
		out.DietaryRestrictions = append([]DietaryRestriction(nil), g.DietaryRestrictions...)
	}
	if g.SeatPosition != nil {
		pos := *g.SeatPosition
		out.SeatPosition = &pos
	}
	return out
}

// Validate checks the guest's own invariants.
func (g *Guest) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidGuest)
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: guest %s has no name", ErrInvalidGuest, g.ID)
	}
	if g.AssignedTableID == "" && g.SeatPosition != nil {
		return fmt.Errorf("%w: guest %s has a seat position but no table", ErrInvalidGuest, g.ID)
	}
	if g.GuestOf == g.ID {
		return fmt.Errorf("%w: guest %s cannot be its own companion", ErrInvalidGuest, g.ID)
	}
	for _, r := range g.DietaryRestrictions {
		if _, ok := dietaryLabels[r]; !ok {
			return fmt.Errorf("%w: guest %s has unknown dietary restriction %q", ErrInvalidGuest, g.ID, r)
		}
	}
	return nil
}
