/* engine.go
 * Contains the public entry point for the analysis engine. Evaluate runs the full
 * parser -> aggregator -> classifier -> scenario generator pipeline and assembles the
 * MatchResult. Every call recomputes from scratch; the engine holds no state, raises no
 * errors and is safe to call concurrently.
 */

package engine

import (
	"fmt"
	"strings"

	"racketlon-bot/api/shared"
)

// SetBreakdown is the per sport slice of a MatchResult
type SetBreakdown struct {
	Sport  shared.Sport `json:"sport" bson:"sport"`
	Played bool         `json:"played" bson:"played"`
	ScoreA int          `json:"scoreA" bson:"scorea"`
	ScoreB int          `json:"scoreB" bson:"scoreb"`
	Margin int          `json:"margin" bson:"margin"`
}

// MatchResult is the full engine output. Field names and entry types are a stable
// contract consumed by the web layer and stored by the match history store.
type MatchResult struct {
	PlayerA string `json:"playerA" bson:"playera"`
	PlayerB string `json:"playerB" bson:"playerb"`

	Sets []SetBreakdown `json:"sets" bson:"sets"`

	TotalA             int `json:"totalA" bson:"totala"`
	TotalB             int `json:"totalB" bson:"totalb"`
	Delta              int `json:"delta" bson:"delta"`
	SportsPlayed       int `json:"sportsPlayed" bson:"sportsplayed"`
	SportsRemaining    int `json:"sportsRemaining" bson:"sportsremaining"`
	MaxRemainingPoints int `json:"maxRemainingPoints" bson:"maxremainingpoints"`

	Status   Status  `json:"status" bson:"status"`
	Winner   string  `json:"winner,omitempty" bson:"winner,omitempty"`
	Analysis []Entry `json:"analysis" bson:"analysis"`

	// State is the typed variant behind Status/Winner/Analysis; it is not serialized
	State State `json:"-" bson:"-"`
}

// Evaluate computes the live standing and tactical analysis for a match.
// Preconditions: receives a MatchInput; score strings may be absent, blank or malformed
// and player names may be empty
// Postconditions: returns a fully populated MatchResult. Never returns an error and
// never panics; malformed scores simply count as unplayed sports.
func Evaluate(input shared.MatchInput) MatchResult {
	nameA, nameB := input.PlayerNames()

	sets := make(map[shared.Sport]*SetScore, len(shared.SportOrder))
	for _, sport := range shared.SportOrder {
		sets[sport] = ParseSetScore(input.Scores[sport])
	}

	totals := Aggregate(sets)
	state := Classify(totals, nameA, nameB)

	result := MatchResult{
		PlayerA:            nameA,
		PlayerB:            nameB,
		Sets:               breakdown(sets),
		TotalA:             totals.TotalA,
		TotalB:             totals.TotalB,
		Delta:              totals.Delta,
		SportsPlayed:       totals.SportsPlayed,
		SportsRemaining:    totals.SportsRemaining,
		MaxRemainingPoints: totals.MaxRemainingPoints,
		Status:             state.Status(),
	}

	switch s := state.(type) {
	case Finished:
		result.Winner = s.Winner
		result.Analysis = []Entry{finishedEntry(totals, s)}
		result.State = s
	case Gummiarm:
		result.Analysis = []Entry{gummiarmEntry(totals)}
		result.State = s
	case InProgress:
		s.Analysis = Scenarios(totals, nameA, nameB, Unplayed(sets))
		result.Analysis = s.Analysis
		result.State = s
	}

	return result
}

// breakdown flattens the parsed sets into the per sport result slice, in play order
func breakdown(sets map[shared.Sport]*SetScore) []SetBreakdown {
	out := make([]SetBreakdown, 0, len(shared.SportOrder))
	for _, sport := range shared.SportOrder {
		set := sets[sport]
		if set == nil {
			out = append(out, SetBreakdown{Sport: sport})
			continue
		}
		out = append(out, SetBreakdown{
			Sport:  sport,
			Played: true,
			ScoreA: set.A,
			ScoreB: set.B,
			Margin: set.Margin(),
		})
	}
	return out
}

// finishedEntry renders the single analysis entry of a decided match
func finishedEntry(t Totals, f Finished) Entry {
	if f.Early {
		return Entry{
			Type: EntryClinched,
			Text: fmt.Sprintf("%s has already won the match: a %d point lead cannot be overturned with only %d points left to play.",
				f.Winner, abs(t.Delta), t.MaxRemainingPoints),
			Facts: map[string]int{"margin": abs(t.Delta), "remainingPoints": t.MaxRemainingPoints},
		}
	}
	return Entry{
		Type:  EntryWinner,
		Text:  fmt.Sprintf("%s wins the match %d-%d.", f.Winner, max(t.TotalA, t.TotalB), min(t.TotalA, t.TotalB)),
		Facts: map[string]int{"totalA": t.TotalA, "totalB": t.TotalB},
	}
}

// gummiarmEntry renders the single analysis entry of a level completed match
func gummiarmEntry(t Totals) Entry {
	return Entry{
		Type: EntryGummiarm,
		Text: fmt.Sprintf("Totals are level at %d-%d after all four sports: one decisive gummiarm point, played in tennis, settles the match.",
			t.TotalA, t.TotalB),
		Facts: map[string]int{"totalA": t.TotalA, "totalB": t.TotalB},
	}
}

// Report renders the result as a text block for chat surfaces: the per sport scores,
// the running totals and every analysis line
func (r MatchResult) Report() string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s vs %s\n", r.PlayerA, r.PlayerB))
	for _, set := range r.Sets {
		if !set.Played {
			out.WriteString(fmt.Sprintf("- %s: not played\n", set.Sport.Label()))
			continue
		}
		out.WriteString(fmt.Sprintf("- %s: %d-%d\n", set.Sport.Label(), set.ScoreA, set.ScoreB))
	}
	out.WriteString(fmt.Sprintf("Total: %d-%d\n", r.TotalA, r.TotalB))
	for _, entry := range r.Analysis {
		out.WriteString(entry.Text)
		out.WriteString("\n")
	}
	return out.String()
}
