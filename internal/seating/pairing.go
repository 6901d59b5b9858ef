package seating

import (
	"math/rand/v2"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/tableplanner/internal/models"
)

// pair is a host and a companion, as indexes into the plan's guests.
type pair struct {
	host      int
	companion int
}

// pairCompanions walks guests in order and pairs each unpaired guest with
// its unpaired host. A guest joins at most one pair. Unknown or self
// references are treated as no host.
func pairCompanions(guests []models.Guest) (pairs []pair, singles []int) {
	index := make(map[string]int, len(guests))
	for i, g := range guests {
		if _, dup := index[g.ID]; !dup {
			index[g.ID] = i
		}
	}

	paired := make([]bool, len(guests))
	for i, g := range guests {
		if paired[i] || g.GuestOf == "" {
			continue
		}
		host, ok := index[g.GuestOf]
		if !ok || host == i || paired[host] {
			continue
		}
		pairs = append(pairs, pair{host: host, companion: i})
		paired[host], paired[i] = true, true
	}

	for i := range guests {
		if !paired[i] {
			singles = append(singles, i)
		}
	}
	return pairs, singles
}

// allSingles returns every guest index in input order.
func allSingles(n int) []int {
	singles := make([]int, n)
	for i := range singles {
		singles[i] = i
	}
	return singles
}

// orderQueues sorts pairs by host name and singles by name, or shuffles
// both independently.
func orderQueues(guests []models.Guest, pairs []pair, singles []int, cfg Config) {
	if cfg.Randomize {
		r := cfg.Rand
		if r == nil {
			r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		}
		shuffle(r, pairs)
		shuffle(r, singles)
		return
	}

	col := collate.New(language.English)
	slices.SortStableFunc(pairs, func(a, b pair) int {
		return col.CompareString(guests[a.host].Name, guests[b.host].Name)
	})
	slices.SortStableFunc(singles, func(a, b int) int {
		return col.CompareString(guests[a].Name, guests[b].Name)
	})
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
