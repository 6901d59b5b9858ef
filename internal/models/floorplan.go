package models

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBulkItems caps the number of tables or guests saved in one floor plan.
const MaxBulkItems = 500

// ErrInvalidFloorPlan is returned when a floor plan fails validation.
var ErrInvalidFloorPlan = errors.New("invalid floor plan")

// FloorPlan is one event layout: its tables and its guest list.
type FloorPlan struct {
	// ID is the unique identifier for the floor plan (UUID format).
	ID string `json:"id" yaml:"id,omitempty"`

	// OwnerID is the user who created the plan. Only the owner can see it.
	OwnerID string `json:"ownerId" yaml:"ownerId,omitempty"`

	// Name is the display name, at most 200 characters.
	Name string `json:"name" yaml:"name,omitempty"`

	Tables []Table `json:"tables" yaml:"tables"`
	Guests []Guest `json:"guests" yaml:"guests"`

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64 `json:"createdAt" yaml:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" yaml:"updatedAt,omitempty"`
}

// ValidateName checks the plan name length.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFloorPlan)
	}
	if len(name) > 200 {
		return fmt.Errorf("%w: name must be at most 200 characters", ErrInvalidFloorPlan)
	}
	return nil
}

// ValidateContents checks the tables and guests of a plan, including the
// bidirectional seat/guest links. Dangling GuestOf references are allowed.
func ValidateContents(tables []Table, guests []Guest, maxItems int) error {
	if maxItems <= 0 {
		maxItems = MaxBulkItems
	}
	if len(tables) > maxItems {
		return fmt.Errorf("%w: tables exceeds maximum of %d items", ErrInvalidFloorPlan, maxItems)
	}
	if len(guests) > maxItems {
		return fmt.Errorf("%w: guests exceeds maximum of %d items", ErrInvalidFloorPlan, maxItems)
	}

	tableByID := make(map[string]*Table, len(tables))
	for i := range tables {
		t := &tables[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := tableByID[t.ID]; dup {
			return fmt.Errorf("%w: duplicate table id %s", ErrInvalidFloorPlan, t.ID)
		}
		tableByID[t.ID] = t
	}

	guestIDs := make(map[string]bool, len(guests))
	for i := range guests {
		g := &guests[i]
		if err := g.Validate(); err != nil {
			return err
		}
		if guestIDs[g.ID] {
			return fmt.Errorf("%w: duplicate guest id %s", ErrInvalidFloorPlan, g.ID)
		}
		guestIDs[g.ID] = true

		if !g.IsAssigned() {
			continue
		}
		t, ok := tableByID[g.AssignedTableID]
		if !ok {
			return fmt.Errorf("%w: guest %s is assigned to unknown table %s", ErrInvalidFloorPlan, g.ID, g.AssignedTableID)
		}
		if g.SeatPosition == nil || *g.SeatPosition < 0 || *g.SeatPosition >= len(t.Seats) {
			return fmt.Errorf("%w: guest %s has no valid seat at table %s", ErrInvalidFloorPlan, g.ID, t.ID)
		}
		if t.Seats[*g.SeatPosition].GuestID != g.ID {
			return fmt.Errorf("%w: seat %d at table %s does not hold guest %s", ErrInvalidFloorPlan, *g.SeatPosition, t.ID, g.ID)
		}
	}

	seated := make(map[string]string)
	for _, t := range tables {
		for _, s := range t.Seats {
			if s.IsEmpty() {
				continue
			}
			if !guestIDs[s.GuestID] {
				return fmt.Errorf("%w: table %s seats unknown guest %s", ErrInvalidFloorPlan, t.ID, s.GuestID)
			}
			if other, dup := seated[s.GuestID]; dup {
				return fmt.Errorf("%w: guest %s is seated at both %s and %s", ErrInvalidFloorPlan, s.GuestID, other, t.ID)
			}
			seated[s.GuestID] = t.ID
		}
	}
	return nil
}
