/* scenario.go
 * Contains the scenario generator: the tactical "what score clinches the match" analysis
 * for in progress matches. All mirrored player A / player B arithmetic goes through the
 * side type so each branch is written once and evaluated from both perspectives.
 */

package engine

import (
	"fmt"

	"racketlon-bot/api/shared"
)

// Entry is one tagged analysis message. Type is a stable presentation hint, Text is the
// rendered prose and Facts carries every number embedded in the prose so presentation
// layers can re-render without redoing the arithmetic.
type Entry struct {
	Type  string         `json:"type"`
	Text  string         `json:"text"`
	Facts map[string]int `json:"facts,omitempty"`
}

// Entry types. These are a wire contract with the web layer and must not change.
const (
	EntryLeader           = "leader"
	EntryTied             = "tied"
	EntryWinner           = "winner"
	EntryGummiarm         = "gummiarm"
	EntryClinched         = "clinched"
	EntryScenario         = "scenario"
	EntryGummiarmScenario = "gummiarm_scenario"
	EntrySkipTennis       = "skip_tennis"
	EntryTennisSetup      = "tennis_setup"
	EntryClinchPossible   = "clinch_possible"
	EntryInfo             = "info"
	EntryHeader           = "header"
)

// side is one player's view of the match: their own name, the opponent's name and the
// signed margin toward them (positive means this side leads)
type side struct {
	name  string
	opp   string
	delta int
}

// sides returns player A's and player B's perspectives on the totals
func sides(t Totals, nameA string, nameB string) (side, side) {
	a := side{name: nameA, opp: nameB, delta: t.Delta}
	b := side{name: nameB, opp: nameA, delta: -t.Delta}
	return a, b
}

// leaderTrailer orders two sides by their margin; with a level score player A is
// returned first but callers only use this ordering when the margin is nonzero
func leaderTrailer(a side, b side) (side, side) {
	if b.delta > a.delta {
		return b, a
	}
	return a, b
}

// Scenarios generates the ordered analysis entries for an in progress match.
// Preconditions: receives the aggregated totals, both display names and the unplayed
// sports in fixed play order; must only be called when the match is still undecided
// Postconditions: returns the entries, starting with the leader or tied entry and
// followed by the branch matching how many sports remain
func Scenarios(t Totals, nameA string, nameB string, unplayed []shared.Sport) []Entry {
	a, b := sides(t, nameA, nameB)

	var entries []Entry
	entries = append(entries, standingEntry(t, a, b))

	switch len(unplayed) {
	case 0:
		// nothing left to analyse; the classifier handles completed matches
	case 1:
		entries = append(entries, lastSportScenarios(a, b, unplayed[0])...)
	case 2:
		entries = append(entries, beforeDeciderScenarios(a, b, unplayed[0], unplayed[1])...)
	default:
		entries = append(entries, earlyStageScenarios(a, b, unplayed)...)
	}
	return entries
}

// standingEntry reports the current leader or an exact tie. Always the first entry.
func standingEntry(t Totals, a side, b side) Entry {
	if t.Delta == 0 {
		return Entry{
			Type:  EntryTied,
			Text:  fmt.Sprintf("Scores are level at %d-%d.", t.TotalA, t.TotalB),
			Facts: map[string]int{"totalA": t.TotalA, "totalB": t.TotalB},
		}
	}
	leader, _ := leaderTrailer(a, b)
	return Entry{
		Type:  EntryLeader,
		Text:  fmt.Sprintf("%s leads by %d points (%d-%d).", leader.name, leader.delta, t.TotalA, t.TotalB),
		Facts: map[string]int{"margin": leader.delta, "totalA": t.TotalA, "totalB": t.TotalB},
	}
}

// lastSportScenarios covers the single remaining sport. All outcomes hinge on whether
// the trailing player can out-swing the margin within the 21 point cap: matching the
// margin exactly forces the gummiarm point, only strictly exceeding it wins.
func lastSportScenarios(a side, b side, last shared.Sport) []Entry {
	label := last.Label()

	if a.delta == 0 {
		return []Entry{
			{
				Type: EntryScenario,
				Text: fmt.Sprintf("Whoever wins %s wins the match.", label),
			},
			{
				Type: EntryGummiarmScenario,
				Text: fmt.Sprintf("If %s ends level, the match goes to a gummiarm point.", label),
			},
		}
	}

	leader, trailer := leaderTrailer(a, b)
	lead := leader.delta

	// Unreachable through the public entry point (the classifier already finishes the
	// match when the lead exceeds the cap) but kept so the generator is safe standalone.
	if lead > shared.MaxSetPoints {
		return []Entry{{
			Type:  EntryClinched,
			Text:  fmt.Sprintf("%s has already clinched the match; no %s result can close a %d point gap.", leader.name, label, lead),
			Facts: map[string]int{"margin": lead},
		}}
	}

	if lead == shared.MaxSetPoints {
		return []Entry{{
			Type:  EntryGummiarmScenario,
			Text:  fmt.Sprintf("%s must win %s 21-0 to force a gummiarm point; anything less and %s wins the match.", trailer.name, label, leader.name),
			Facts: map[string]int{"margin": lead},
		}}
	}

	// 0 < lead < 21: the trailer wins only by winning the last sport by more than the
	// margin, the leader survives losing by up to margin-1, and winning it by exactly
	// the margin forces the gummiarm point.
	trailerNeeds := shared.MaxSetPoints - lead - 1
	gummiarmScore := shared.MaxSetPoints - lead
	return []Entry{
		{
			Type:  EntryScenario,
			Text:  fmt.Sprintf("%s wins the match by winning %s 21-%d or better.", trailer.name, label, trailerNeeds),
			Facts: map[string]int{"score": trailerNeeds, "margin": lead},
		},
		{
			Type:  EntryScenario,
			Text:  fmt.Sprintf("%s wins the match by winning %s, or by losing it by no more than %d points.", leader.name, label, lead-1),
			Facts: map[string]int{"maxLosingMargin": lead - 1, "margin": lead},
		},
		{
			Type:  EntryGummiarmScenario,
			Text:  fmt.Sprintf("A gummiarm point is forced if %s wins %s exactly 21-%d.", trailer.name, label, gummiarmScore),
			Facts: map[string]int{"score": gummiarmScore, "margin": lead},
		},
	}
}

// beforeDeciderScenarios covers the second to last sport: can either player clinch the
// match here and skip the decider entirely, and what does the lead look like going in.
// The 22-delta threshold is deliberate: the margin after this sport must strictly exceed
// the 21 points left in the decider, equalling them only forces the gummiarm route.
func beforeDeciderScenarios(a side, b side, next shared.Sport, decider shared.Sport) []Entry {
	label := next.Label()
	deciderLabel := decider.Label()

	if a.delta == 0 {
		return []Entry{{
			Type: EntryInfo,
			Text: fmt.Sprintf("Whoever wins %s takes the lead into %s.", label, deciderLabel),
		}}
	}

	var entries []Entry
	for _, s := range []side{a, b} {
		gain := shared.MaxSetPoints + 1 - s.delta
		if entry, ok := skipDeciderEntry(s, gain, label, deciderLabel); ok {
			entries = append(entries, entry)
		}
	}

	leader, trailer := leaderTrailer(a, b)
	entries = append(entries,
		Entry{
			Type:  EntryTennisSetup,
			Text:  fmt.Sprintf("%s carries a lead into %s even when losing %s by up to %d points.", leader.name, deciderLabel, label, leader.delta-1),
			Facts: map[string]int{"maxLosingMargin": leader.delta - 1},
		},
		Entry{
			Type:  EntryTennisSetup,
			Text:  fmt.Sprintf("%s takes the lead into %s by winning %s by %d or more points.", trailer.name, deciderLabel, label, leader.delta+1),
			Facts: map[string]int{"gain": leader.delta + 1},
		},
	)
	return entries
}

// skipDeciderEntry renders the "clinch now, skip the decider" entry for one side, if the
// required swing is reachable. The example score follows the best case convention 21-X
// with X = 21-gain; an X outside 0..21 means no single sport result delivers the swing.
func skipDeciderEntry(s side, gain int, label string, deciderLabel string) (Entry, bool) {
	loser := shared.MaxSetPoints - gain
	if loser < 0 || loser > shared.MaxSetPoints {
		return Entry{}, false
	}
	return Entry{
		Type: EntrySkipTennis,
		Text: fmt.Sprintf("%s clinches the match without playing %s by winning %s 21-%d or better.",
			s.name, deciderLabel, label, loser),
		Facts: map[string]int{"gain": gain, "score": loser},
	}, true
}

// earlyStageScenarios covers three or more remaining sports: report what is still on the
// table and whether a single dominant result in the next sport could already end it.
func earlyStageScenarios(a side, b side, unplayed []shared.Sport) []Entry {
	remaining := len(unplayed)
	label := unplayed[0].Label()
	pointsAfterThis := (remaining - 1) * shared.MaxSetPoints
	maxInPlay := pointsAfterThis + shared.MaxSetPoints

	entries := []Entry{{
		Type:  EntryHeader,
		Text:  fmt.Sprintf("%d sports remain, with up to %d points still in play.", remaining, maxInPlay),
		Facts: map[string]int{"remaining": remaining, "points": maxInPlay},
	}}

	decidable := false
	for _, s := range []side{a, b} {
		gain := pointsAfterThis - s.delta + 1
		entry, ok := clinchPossibleEntry(s, gain, label, pointsAfterThis)
		if !ok {
			continue
		}
		decidable = true
		entries = append(entries, entry)
	}

	if !decidable {
		entries = append(entries, Entry{
			Type:  EntryInfo,
			Text:  fmt.Sprintf("The match cannot be decided in %s alone; too many points remain afterwards.", label),
			Facts: map[string]int{"pointsAfter": pointsAfterThis},
		})
	}
	return entries
}

// clinchPossibleEntry renders the early clinch entry for one side, if a single sport can
// deliver the required swing under the same 21-X example score convention
func clinchPossibleEntry(s side, gain int, label string, pointsAfter int) (Entry, bool) {
	if gain > shared.MaxSetPoints {
		return Entry{}, false
	}
	loser := shared.MaxSetPoints - gain
	if loser < 0 || loser > shared.MaxSetPoints {
		return Entry{}, false
	}
	return Entry{
		Type: EntryClinchPossible,
		Text: fmt.Sprintf("%s can already put the match beyond reach by winning %s 21-%d, leaving %s unable to catch up over the remaining %d points.",
			s.name, label, loser, s.opp, pointsAfter),
		Facts: map[string]int{"gain": gain, "score": loser, "pointsAfter": pointsAfter},
	}, true
}
