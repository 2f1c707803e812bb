/* aggregate.go
 * Contains the match aggregator: sums parsed set scores into cumulative totals, the signed
 * margin and the remaining points bound used by the status classifier
 */

package engine

import (
	"racketlon-bot/api/shared"
)

// Totals holds the aggregate numbers for a partially or fully played match
type Totals struct {
	TotalA             int
	TotalB             int
	Delta              int // TotalA - TotalB, positive favours player A
	SportsPlayed       int
	SportsRemaining    int
	MaxRemainingPoints int // SportsRemaining * 21
}

// Aggregate computes totals over the parsed sets, in fixed sport order.
// Preconditions: receives a map of sport to parsed set score, where a nil entry or a missing
// key means the sport has not been played
// Postconditions: returns the Totals; with zero sports played all totals are zero and all
// four sports count as remaining
func Aggregate(sets map[shared.Sport]*SetScore) Totals {
	var t Totals
	for _, sport := range shared.SportOrder {
		set := sets[sport]
		if set == nil {
			continue
		}
		t.TotalA += set.A
		t.TotalB += set.B
		t.SportsPlayed++
	}
	t.Delta = t.TotalA - t.TotalB
	t.SportsRemaining = len(shared.SportOrder) - t.SportsPlayed
	t.MaxRemainingPoints = t.SportsRemaining * shared.MaxSetPoints
	return t
}

// Unplayed returns the sports that have no parsed score yet, in fixed play order
func Unplayed(sets map[shared.Sport]*SetScore) []shared.Sport {
	var remaining []shared.Sport
	for _, sport := range shared.SportOrder {
		if sets[sport] == nil {
			remaining = append(remaining, sport)
		}
	}
	return remaining
}
