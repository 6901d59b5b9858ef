package seating

import (
	"testing"

	"github.com/mmynk/tableplanner/internal/models"
)

// occupy marks the given seat positions as taken.
func occupy(t models.Table, positions ...int) models.Table {
	for _, p := range positions {
		t.Seats[p].GuestID = "taken"
		t.AssignedGuests = append(t.AssignedGuests, "taken")
	}
	return t
}

func TestFindSeatPair(t *testing.T) {
	tests := []struct {
		name      string
		table     models.Table
		placement Placement
		wantA     int
		wantB     int
		wantOK    bool
	}{
		{
			name:      "round next-to empty table",
			table:     models.NewRoundTable("R", 6),
			placement: PlaceNextTo,
			wantA:     0, wantB: 1, wantOK: true,
		},
		{
			name:      "round next-to wraps around",
			table:     occupy(models.NewRoundTable("R", 6), 1, 2, 3, 4),
			placement: PlaceNextTo,
			wantA:     5, wantB: 0, wantOK: true,
		},
		{
			name:      "round across even table",
			table:     models.NewRoundTable("R", 6),
			placement: PlaceAcross,
			wantA:     0, wantB: 3, wantOK: true,
		},
		{
			name:      "round across skips taken seat",
			table:     occupy(models.NewRoundTable("R", 8), 0),
			placement: PlaceAcross,
			wantA:     1, wantB: 5, wantOK: true,
		},
		{
			name:      "round across odd table uses integer half",
			table:     models.NewRoundTable("R", 5),
			placement: PlaceAcross,
			wantA:     0, wantB: 2, wantOK: true,
		},
		{
			name:      "round across falls back to first two free seats",
			table:     occupy(models.NewRoundTable("R", 4), 0, 3),
			placement: PlaceAcross,
			wantA:     1, wantB: 2, wantOK: true,
		},
		{
			name:      "line across pairs top and bottom",
			table:     models.NewLineTable("L", 3, false, false, false),
			placement: PlaceAcross,
			wantA:     0, wantB: 3, wantOK: true,
		},
		{
			name:      "line next-to stays on one side",
			table:     occupy(models.NewLineTable("L", 3, false, false, false), 0, 1),
			placement: PlaceNextTo,
			wantA:     3, wantB: 4, wantOK: true,
		},
		{
			name:      "line across falls back when no opposite pair is free",
			table:     occupy(models.NewLineTable("L", 2, false, false, false), 0, 3),
			placement: PlaceAcross,
			wantA:     1, wantB: 2, wantOK: true,
		},
		{
			name:      "line end seats only used by fallback",
			table:     occupy(models.NewLineTable("L", 1, false, true, true), 0, 1),
			placement: PlaceNextTo,
			wantA:     2, wantB: 3, wantOK: true,
		},
		{
			name:      "single-sided line finds adjacent run",
			table:     occupy(models.NewLineTable("L", 4, true, false, false), 1),
			placement: PlaceAcross,
			wantA:     2, wantB: 3, wantOK: true,
		},
		{
			name:      "u-shape uses adjacent indexes",
			table:     occupy(models.NewUShapeTable("U", 2, 2, 2), 0, 2),
			placement: PlaceNextTo,
			wantA:     3, wantB: 4, wantOK: true,
		},
		{
			name:      "one free seat is not enough",
			table:     occupy(models.NewRoundTable("R", 3), 0, 1),
			placement: PlaceNextTo,
			wantOK:    false,
		},
		{
			name:      "empty table has no seats",
			table:     models.NewRoundTable("R", 0),
			placement: PlaceAcross,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := FindSeatPair(&tt.table, tt.placement)
			if ok != tt.wantOK {
				t.Fatalf("FindSeatPair() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if a != tt.wantA || b != tt.wantB {
				t.Errorf("FindSeatPair() = (%d, %d), want (%d, %d)", a, b, tt.wantA, tt.wantB)
			}
		})
	}
}
