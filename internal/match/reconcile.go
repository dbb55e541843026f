package match

import (
	"sort"
	"time"
)

// Partition is the derived next/last split of a club's full match set.
type Partition struct {
	Next *Match
	Last []Match
}

// Reconcile recomputes the next/last partition from the full match set.
// Matches with a kickoff strictly after now are candidates for "next"; the
// earliest of those wins and every other match - remaining future fixtures
// included - lands in "last", sorted descending by kickoff. The sort is
// stable: equal kickoffs keep the insertion order of the input slice, so
// running Reconcile twice on an unchanged set yields an identical result.
//
// This is deliberately non-incremental: deriving from the full set after
// every mutation cannot drift the way partial updates of "next" and "last"
// against each other can.
func Reconcile(matches []Match, now time.Time) Partition {
	var next *Match
	nextIdx := -1
	for i := range matches {
		if !matches[i].KickoffAt.After(now) {
			continue
		}
		if next == nil || matches[i].KickoffAt.Before(next.KickoffAt) {
			next = &matches[i]
			nextIdx = i
		}
	}

	last := make([]Match, 0, len(matches))
	for i := range matches {
		if i == nextIdx {
			continue
		}
		last = append(last, matches[i])
	}

	sort.SliceStable(last, func(i, j int) bool {
		return last[i].KickoffAt.After(last[j].KickoffAt)
	})

	return Partition{Next: next, Last: last}
}
