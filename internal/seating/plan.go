package seating

import "github.com/mmynk/tableplanner/internal/models"

// plan is the working copy one Assign run mutates. Guests and tables are
// addressed by index into its own slices, never into the caller's.
type plan struct {
	guests   []models.Guest
	tables   []models.Table
	assigned int
}

// claim seats one guest. apply performs all three link updates together.
type claim struct {
	guest int
	table int
	seat  int
}

func newPlan(guests []models.Guest, tables []models.Table) *plan {
	p := &plan{
		guests: make([]models.Guest, len(guests)),
		tables: make([]models.Table, len(tables)),
	}
	for i, g := range guests {
		c := g.Clone()
		c.ClearAssignment()
		p.guests[i] = c
	}
	for i, t := range tables {
		c := t.Clone()
		c.AssignedGuests = []string{}
		for s := range c.Seats {
			c.Seats[s].GuestID = ""
		}
		p.tables[i] = c
	}
	return p
}

func (p *plan) apply(c claim) {
	g := &p.guests[c.guest]
	t := &p.tables[c.table]
	pos := c.seat

	t.Seats[pos].GuestID = g.ID
	t.AssignedGuests = append(t.AssignedGuests, g.ID)
	g.AssignedTableID = t.ID
	g.SeatPosition = &pos
	p.assigned++
}

// seatPair tries to seat both members of pr at table ti.
func (p *plan) seatPair(pr pair, ti int, place Placement) bool {
	a, b, ok := FindSeatPair(&p.tables[ti], place)
	if !ok {
		return false
	}
	p.apply(claim{guest: pr.host, table: ti, seat: a})
	p.apply(claim{guest: pr.companion, table: ti, seat: b})
	return true
}

// seatSingle tries to seat guest gi at the first free seat of table ti.
func (p *plan) seatSingle(gi, ti int) bool {
	pos, ok := firstEmptySeat(&p.tables[ti])
	if !ok {
		return false
	}
	p.apply(claim{guest: gi, table: ti, seat: pos})
	return true
}

// fillBalanced rotates a table pointer after every placement.
// The first single that finds no seat anywhere stops the run.
func (p *plan) fillBalanced(pairs []pair, singles []int, place Placement) {
	n := len(p.tables)
	next := 0

	for _, pr := range pairs {
		placed := false
		for attempt := 0; attempt < n; attempt++ {
			ti := (next + attempt) % n
			if p.seatPair(pr, ti, place) {
				next = (ti + 1) % n
				placed = true
				break
			}
		}
		if !placed {
			singles = append(singles, pr.host, pr.companion)
		}
	}

	for _, gi := range singles {
		placed := false
		for attempt := 0; attempt < n; attempt++ {
			ti := (next + attempt) % n
			if p.seatSingle(gi, ti) {
				next = (ti + 1) % n
				placed = true
				break
			}
		}
		if !placed {
			return
		}
	}
}

// fillSequential fills each table before moving to the next, without
// wrapping around.
//
// The pair pass and the singles pass each keep their own forward-only table
// index. The singles index starts back at the first table rather than where
// the pair pass stopped, so seats left behind by pairs (and by demoted pairs)
// can still take singles. With pairs present this seats more guests than a
// single shared index would, and may put a single at an earlier table.
func (p *plan) fillSequential(pairs []pair, singles []int, place Placement) {
	n := len(p.tables)
	cur := 0

	for _, pr := range pairs {
		placed := false
		for ti := cur; ti < n; ti++ {
			if p.seatPair(pr, ti, place) {
				cur = ti
				if p.tables[ti].IsFull() {
					cur++
				}
				placed = true
				break
			}
		}
		if !placed {
			singles = append(singles, pr.host, pr.companion)
		}
	}

	cur = 0
	for _, gi := range singles {
		for cur < n && !p.seatSingle(gi, cur) {
			cur++
		}
		if cur >= n {
			return
		}
		if p.tables[cur].IsFull() {
			cur++
		}
	}
}
