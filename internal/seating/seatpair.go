package seating

import "github.com/mmynk/tableplanner/internal/models"

// layout finds structurally matching seat pairs for one table shape.
type layout interface {
	pair(t *models.Table, p Placement) (int, int, bool)
}

// layoutOf maps a table to its pairing layout. New shapes get a case here.
func layoutOf(t *models.Table) layout {
	switch t.TableType {
	case models.TableRound:
		return roundLayout{}
	case models.TableLine:
		// End chairs are indexed after the side seats and never take part in
		// structural pairing.
		side := len(t.Seats) - t.EndSeatCount()
		if side < 0 {
			side = 0
		}
		if t.SingleSided {
			return runLayout{limit: side}
		}
		return lineLayout{perSide: (side + 1) / 2, sideSeats: side}
	case models.TableUShape:
		return runLayout{limit: len(t.Seats)}
	}
	return runLayout{limit: len(t.Seats)}
}

func isEmpty(t *models.Table, i int) bool {
	return i >= 0 && i < len(t.Seats) && t.Seats[i].IsEmpty()
}

// roundLayout pairs i with i+1 (next-to) or i+n/2 (across), wrapping.
type roundLayout struct{}

func (roundLayout) pair(t *models.Table, p Placement) (int, int, bool) {
	n := len(t.Seats)
	if n < 2 {
		return 0, 0, false
	}
	step := 1
	if p == PlaceAcross {
		step = n / 2
	}
	for i := 0; i < n; i++ {
		j := (i + step) % n
		if i != j && isEmpty(t, i) && isEmpty(t, j) {
			return i, j, true
		}
	}
	return 0, 0, false
}

// lineLayout is a double-sided LINE table: seats [0, perSide) on the top side
// face seats [perSide, sideSeats) on the bottom side.
type lineLayout struct {
	perSide   int
	sideSeats int
}

func (l lineLayout) pair(t *models.Table, p Placement) (int, int, bool) {
	if p == PlaceAcross {
		for i := 0; i < l.perSide; i++ {
			j := l.perSide + i
			if j < l.sideSeats && isEmpty(t, i) && isEmpty(t, j) {
				return i, j, true
			}
		}
		return 0, 0, false
	}
	if a, b, ok := adjacentEmpty(t, 0, l.perSide); ok {
		return a, b, true
	}
	return adjacentEmpty(t, l.perSide, l.sideSeats)
}

// runLayout treats seats [0, limit) as one run; both placements degrade to
// adjacent indexes.
type runLayout struct {
	limit int
}

func (r runLayout) pair(t *models.Table, _ Placement) (int, int, bool) {
	return adjacentEmpty(t, 0, r.limit)
}

// adjacentEmpty returns the first two empty seats i, i+1 within [start, end).
func adjacentEmpty(t *models.Table, start, end int) (int, int, bool) {
	for i := start; i+1 < end; i++ {
		if isEmpty(t, i) && isEmpty(t, i+1) {
			return i, i + 1, true
		}
	}
	return 0, 0, false
}

// FindSeatPair finds two empty seats at t for a companion pair. It prefers
// seats matching the placement for the table's shape and otherwise falls
// back to the first two empty seats in position order. ok is false when
// fewer than two seats are free.
func FindSeatPair(t *models.Table, p Placement) (a, b int, ok bool) {
	if t.EmptySeatCount() < 2 {
		return 0, 0, false
	}
	if a, b, ok = layoutOf(t).pair(t, p); ok {
		return a, b, true
	}

	first := -1
	for i := range t.Seats {
		if !t.Seats[i].IsEmpty() {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		return first, i, true
	}
	return 0, 0, false
}

// firstEmptySeat returns the lowest free seat position at t.
func firstEmptySeat(t *models.Table) (int, bool) {
	for i := range t.Seats {
		if t.Seats[i].IsEmpty() {
			return i, true
		}
	}
	return 0, false
}
