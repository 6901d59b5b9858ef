package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidTable is returned when a table's seat layout is inconsistent.
var ErrInvalidTable = errors.New("invalid table")

// TableType is the shape of a table.
type TableType string

const (
	TableLine   TableType = "LINE"
	TableUShape TableType = "U_SHAPE"
	TableRound  TableType = "ROUND"
)

// ParseTableType accepts "LINE", "U_SHAPE"/"U-SHAPE" or "ROUND" in any case.
func ParseTableType(s string) (TableType, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "LINE":
		return TableLine, nil
	case "U_SHAPE", "USHAPE", "U":
		return TableUShape, nil
	case "ROUND":
		return TableRound, nil
	}
	return "", fmt.Errorf("unknown table type %q", s)
}

// Seat is one indexed position at a table.
type Seat struct {
	Position int    `json:"position" yaml:"position"`
	GuestID  string `json:"guestId" yaml:"guestId,omitempty"`
	Label    string `json:"label" yaml:"label,omitempty"`
}

// IsEmpty reports whether nobody sits in the seat.
func (s Seat) IsEmpty() bool {
	return s.GuestID == ""
}

// Table represents a table on the floor plan.
//
// Seat indexes are laid out by shape:
//   - LINE: top side, then bottom side (double-sided only), then the left
//     end seat, then the right end seat.
//   - U_SHAPE: top arm, left arm, right arm.
//   - ROUND: clockwise from seat 0.
type Table struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	TableType TableType `json:"tableType" yaml:"type"`

	// Seats is ordered by position; len(Seats) == Capacity.
	Seats    []Seat `json:"seats" yaml:"seats,omitempty"`
	Capacity int    `json:"capacity" yaml:"capacity,omitempty"`

	// AssignedGuests holds the IDs of guests seated here.
	AssignedGuests []string `json:"assignedGuests" yaml:"assignedGuests,omitempty"`

	// LINE
	SeatsPerSide int  `json:"seatsPerSide" yaml:"seatsPerSide,omitempty"`
	SingleSided  bool `json:"singleSided" yaml:"singleSided,omitempty"`
	EndSeatLeft  bool `json:"endSeatLeft" yaml:"endSeatLeft,omitempty"`
	EndSeatRight bool `json:"endSeatRight" yaml:"endSeatRight,omitempty"`

	// U_SHAPE
	TopSeats   int `json:"topSeats" yaml:"topSeats,omitempty"`
	LeftSeats  int `json:"leftSeats" yaml:"leftSeats,omitempty"`
	RightSeats int `json:"rightSeats" yaml:"rightSeats,omitempty"`
}

func makeSeats(count int) []Seat {
	seats := make([]Seat, count)
	for i := range seats {
		seats[i] = Seat{Position: i, Label: fmt.Sprintf("Seat %d", i+1)}
	}
	return seats
}

// NewLineTable creates a rectangular table with seats along one or both long
// sides and optional chairs at the short ends.
func NewLineTable(name string, seatsPerSide int, singleSided, endSeatLeft, endSeatRight bool) Table {
	t := Table{
		ID:           uuid.New().String(),
		Name:         name,
		TableType:    TableLine,
		SeatsPerSide: seatsPerSide,
		SingleSided:  singleSided,
		EndSeatLeft:  endSeatLeft,
		EndSeatRight: endSeatRight,
	}
	t.Capacity = t.ShapeCapacity()
	t.Seats = makeSeats(t.Capacity)
	return t
}

// NewUShapeTable creates a U-shaped table with the given seats per arm.
func NewUShapeTable(name string, topSeats, leftSeats, rightSeats int) Table {
	t := Table{
		ID:         uuid.New().String(),
		Name:       name,
		TableType:  TableUShape,
		TopSeats:   topSeats,
		LeftSeats:  leftSeats,
		RightSeats: rightSeats,
	}
	t.Capacity = t.ShapeCapacity()
	t.Seats = makeSeats(t.Capacity)
	return t
}

// NewRoundTable creates a round table with seatCount seats.
func NewRoundTable(name string, seatCount int) Table {
	return Table{
		ID:        uuid.New().String(),
		Name:      name,
		TableType: TableRound,
		Seats:     makeSeats(seatCount),
		Capacity:  seatCount,
	}
}

// EndSeatCount is the number of LINE end chairs (0, 1 or 2).
func (t *Table) EndSeatCount() int {
	n := 0
	if t.EndSeatLeft {
		n++
	}
	if t.EndSeatRight {
		n++
	}
	return n
}

// ShapeCapacity computes capacity from the shape-specific counts.
// ROUND tables carry no separate count, so their seat array is the source.
func (t *Table) ShapeCapacity() int {
	switch t.TableType {
	case TableLine:
		side := t.SeatsPerSide
		if !t.SingleSided {
			side *= 2
		}
		return side + t.EndSeatCount()
	case TableUShape:
		return t.TopSeats + t.LeftSeats + t.RightSeats
	case TableRound:
		if t.Capacity > 0 {
			return t.Capacity
		}
		return len(t.Seats)
	}
	return len(t.Seats)
}

// BuildSeats fills in Capacity and an empty seat array from the shape counts
// when they were omitted, as happens for hand-written plan files.
func (t *Table) BuildSeats() {
	if t.TableType == TableRound && t.Capacity == 0 {
		t.Capacity = len(t.Seats)
	}
	if t.Capacity == 0 {
		t.Capacity = t.ShapeCapacity()
	}
	if len(t.Seats) == 0 {
		t.Seats = makeSeats(t.Capacity)
	}
}

// EmptySeatCount returns the number of seats without a guest.
func (t *Table) EmptySeatCount() int {
	n := 0
	for _, s := range t.Seats {
		if s.IsEmpty() {
			n++
		}
	}
	return n
}

// IsFull reports whether every seat holds a guest.
func (t *Table) IsFull() bool {
	return len(t.AssignedGuests) >= len(t.Seats)
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := t
	out.Seats = append([]Seat(nil), t.Seats...)
	out.AssignedGuests = append([]string(nil), t.AssignedGuests...)
	return out
}

// Validate checks the table's seat invariants.
func (t *Table) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTable)
	}
	switch t.TableType {
	case TableLine, TableUShape, TableRound:
	default:
		return fmt.Errorf("%w: table %s has unknown type %q", ErrInvalidTable, t.ID, t.TableType)
	}
	if len(t.Seats) != t.Capacity {
		return fmt.Errorf("%w: table %s has %d seats but capacity %d", ErrInvalidTable, t.ID, len(t.Seats), t.Capacity)
	}
	if want := t.ShapeCapacity(); want != t.Capacity {
		return fmt.Errorf("%w: table %s capacity %d does not match its shape (%d)", ErrInvalidTable, t.ID, t.Capacity, want)
	}
	occupied := 0
	for i, s := range t.Seats {
		if s.Position != i {
			return fmt.Errorf("%w: table %s seat %d has position %d", ErrInvalidTable, t.ID, i, s.Position)
		}
		if !s.IsEmpty() {
			occupied++
		}
	}
	if occupied != len(t.AssignedGuests) {
		return fmt.Errorf("%w: table %s has %d occupied seats but %d assigned guests", ErrInvalidTable, t.ID, occupied, len(t.AssignedGuests))
	}
	return nil
}
