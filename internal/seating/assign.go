package seating

import (
	"fmt"

	"github.com/mmynk/tableplanner/internal/models"
)

// Result is the outcome of one Assign run. Callers replace their guest and
// table state with Guests and Tables wholesale.
type Result struct {
	Guests          []models.Guest
	Tables          []models.Table
	Success         bool
	Message         string
	UnassignedCount int

	AssignedCount int
	// PairsFormed counts companion pairs built before seating.
	PairsFormed int
	// PairsTogether counts pairs whose members ended up at the same table.
	PairsTogether int
}

// Assign seats guests at tables according to cfg.
//
// The inputs are never modified. Guests are returned in input order with
// fresh assignments; tables are returned in input order with rebuilt seats.
// Empty guest or table lists short-circuit and return the inputs as given.
func Assign(guests []models.Guest, tables []models.Table, cfg Config) Result {
	if len(guests) == 0 {
		return Result{Guests: guests, Tables: tables, Message: "No guests to assign"}
	}
	if len(tables) == 0 {
		return Result{
			Guests:          guests,
			Tables:          tables,
			Message:         "No tables configured",
			UnassignedCount: len(guests),
		}
	}

	p := newPlan(guests, tables)

	var pairs []pair
	var singles []int
	if cfg.Placement.pairsCompanions() {
		pairs, singles = pairCompanions(p.guests)
	} else {
		singles = allSingles(len(p.guests))
	}
	orderQueues(p.guests, pairs, singles, cfg)

	if cfg.BalanceGuests {
		p.fillBalanced(pairs, singles, cfg.Placement)
	} else {
		p.fillSequential(pairs, singles, cfg.Placement)
	}

	res := p.result(pairs)
	if cfg.Logger != nil {
		cfg.Logger.Debug("seating assigned",
			"guests", len(guests),
			"tables", len(tables),
			"balanced", cfg.BalanceGuests,
			"randomized", cfg.Randomize,
			"placement", string(cfg.Placement),
			"assigned", res.AssignedCount,
			"unassigned", res.UnassignedCount,
			"pairs", res.PairsFormed,
			"pairs_together", res.PairsTogether,
		)
	}
	return res
}

func (p *plan) result(pairs []pair) Result {
	res := Result{
		Guests:          p.guests,
		Tables:          p.tables,
		AssignedCount:   p.assigned,
		UnassignedCount: len(p.guests) - p.assigned,
		PairsFormed:     len(pairs),
	}

	switch {
	case res.UnassignedCount == 0:
		res.Success = true
		res.Message = fmt.Sprintf("Assigned all %d guests", res.AssignedCount)
	case res.AssignedCount > 0:
		res.Message = fmt.Sprintf("Assigned %d. %d couldn't fit", res.AssignedCount, res.UnassignedCount)
	default:
		res.Message = "No capacity available"
	}

	if len(pairs) > 0 {
		for _, pr := range pairs {
			host, comp := &p.guests[pr.host], &p.guests[pr.companion]
			if host.IsAssigned() && host.AssignedTableID == comp.AssignedTableID {
				res.PairsTogether++
			}
		}
		res.Message += fmt.Sprintf(" (%d of %d pairs seated together)", res.PairsTogether, len(pairs))
	}
	return res
}
