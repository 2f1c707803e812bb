/* scenario_test.go
 * Contains unit tests for the scenario generator branches: one, two and three or more
 * remaining sports, with the mirrored player A / player B cases
 */

package engine

import (
	"testing"

	"racketlon-bot/api/shared"

	"github.com/stretchr/testify/assert"
)

// entryTypes extracts the ordered type tags for easy assertions
func entryTypes(entries []Entry) []string {
	types := make([]string, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.Type)
	}
	return types
}

// findEntry returns the first entry of a given type, or nil
func findEntry(entries []Entry, entryType string) *Entry {
	for i := range entries {
		if entries[i].Type == entryType {
			return &entries[i]
		}
	}
	return nil
}

// TestScenarios_LastSport_Leading tests the reference case from three 21-15 sets: delta 18
// into tennis, so the trailer needs 21-2, the leader survives losing by up to 17 and
// exactly 21-3 forces the gummiarm point
func TestScenarios_LastSport_Leading(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-15",
			shared.Badminton:   "21-15",
			shared.Squash:      "21-15",
		},
		PlayerA: "Anna",
		PlayerB: "Ben",
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 63, result.TotalA)
	assert.Equal(t, 45, result.TotalB)
	assert.Equal(t, 18, result.Delta)
	assert.Equal(t, 1, result.SportsRemaining)

	assert.Equal(t, EntryLeader, result.Analysis[0].Type)
	assert.Contains(t, result.Analysis[0].Text, "Anna leads by 18 points")

	trailerWin := findEntry(result.Analysis, EntryScenario)
	assert.NotNil(t, trailerWin)
	assert.Contains(t, trailerWin.Text, "Ben wins the match by winning Tennis 21-2 or better")
	assert.Equal(t, 2, trailerWin.Facts["score"])

	gummiarm := findEntry(result.Analysis, EntryGummiarmScenario)
	assert.NotNil(t, gummiarm)
	assert.Contains(t, gummiarm.Text, "exactly 21-3")
	assert.Equal(t, 3, gummiarm.Facts["score"])

	// the leader entry carries the maximum survivable losing margin
	found := false
	for _, e := range result.Analysis {
		if e.Type == EntryScenario && e.Facts["maxLosingMargin"] == 17 {
			assert.Contains(t, e.Text, "Anna wins the match")
			found = true
		}
	}
	assert.True(t, found, "leader scenario with maxLosingMargin 17 should be present")
}

// TestScenarios_LastSport_TrailerPerspective tests the mirrored case where player B leads
func TestScenarios_LastSport_TrailerPerspective(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "15-21",
			shared.Badminton:   "15-21",
			shared.Squash:      "15-21",
		},
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, -18, result.Delta)
	assert.Contains(t, result.Analysis[0].Text, "Player B leads by 18 points")

	trailerWin := findEntry(result.Analysis, EntryScenario)
	assert.NotNil(t, trailerWin)
	assert.Contains(t, trailerWin.Text, "Player A wins the match by winning Tennis 21-2 or better")
}

// TestScenarios_LastSport_ExactCap tests a lead of exactly 21 into the last sport: the
// trailer can only force a gummiarm point with a 21-0 win, never win outright
func TestScenarios_LastSport_ExactCap(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-0",
			shared.Badminton:   "15-10",
			shared.Squash:      "16-21",
		},
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 21, result.Delta)

	assert.Equal(t, []string{EntryLeader, EntryGummiarmScenario}, entryTypes(result.Analysis))
	assert.Contains(t, result.Analysis[1].Text, "Player B must win Tennis 21-0 to force a gummiarm point")
}

// TestScenarios_LastSport_Tied tests a level score entering the last sport
func TestScenarios_LastSport_Tied(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-15",
			shared.Badminton:   "15-21",
			shared.Squash:      "18-18",
		},
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 0, result.Delta)

	assert.Equal(t, []string{EntryTied, EntryScenario, EntryGummiarmScenario}, entryTypes(result.Analysis))
	assert.Contains(t, result.Analysis[1].Text, "Whoever wins Tennis wins the match")
	assert.Contains(t, result.Analysis[2].Text, "gummiarm point")
}

// TestScenarios_BeforeDecider tests the two remaining sports branch: delta 17 means player A
// can clinch in squash with 21-16 (gain 5) while player B's required 39 point swing is
// unreachable within one sport
func TestScenarios_BeforeDecider(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-10",
			shared.Badminton:   "21-15",
		},
		PlayerA: "Anna",
		PlayerB: "Ben",
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 17, result.Delta)
	assert.Equal(t, 2, result.SportsRemaining)

	skip := findEntry(result.Analysis, EntrySkipTennis)
	assert.NotNil(t, skip)
	assert.Contains(t, skip.Text, "Anna clinches the match without playing Tennis by winning Squash 21-16 or better")
	assert.Equal(t, 5, skip.Facts["gain"])
	assert.Equal(t, 16, skip.Facts["score"])

	// only one side can clinch here; Ben's entry must not be emitted
	count := 0
	for _, e := range result.Analysis {
		if e.Type == EntrySkipTennis {
			count++
		}
	}
	assert.Equal(t, 1, count)

	setups := []Entry{}
	for _, e := range result.Analysis {
		if e.Type == EntryTennisSetup {
			setups = append(setups, e)
		}
	}
	assert.Len(t, setups, 2)
	assert.Contains(t, setups[0].Text, "Anna carries a lead into Tennis even when losing Squash by up to 16 points")
	assert.Contains(t, setups[1].Text, "Ben takes the lead into Tennis by winning Squash by 18 or more points")
}

// TestScenarios_BeforeDecider_Tied tests a level score entering the second to last sport:
// only the generic decider setup message is emitted
func TestScenarios_BeforeDecider_Tied(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-20",
			shared.Badminton:   "20-21",
		},
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 0, result.Delta)

	assert.Equal(t, []string{EntryTied, EntryInfo}, entryTypes(result.Analysis))
	assert.Contains(t, result.Analysis[1].Text, "Whoever wins Squash takes the lead into Tennis")
}

// TestScenarios_BeforeDecider_SmallLead tests the one point lead case: only the leader can
// ever clinch before the decider, and with a single point in hand that takes a 21-0 sweep
func TestScenarios_BeforeDecider_SmallLead(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-19",
			shared.Badminton:   "18-21",
		},
		PlayerA: "Anna",
		PlayerB: "Ben",
	})

	assert.Equal(t, -1, result.Delta)

	var skips []Entry
	for _, e := range result.Analysis {
		if e.Type == EntrySkipTennis {
			skips = append(skips, e)
		}
	}
	// the trailing side's 23 point swing is unreachable, so exactly one entry
	assert.Len(t, skips, 1)
	assert.Contains(t, skips[0].Text, "Ben clinches the match without playing Tennis by winning Squash 21-0")
	assert.Equal(t, 21, skips[0].Facts["gain"])
}

// TestScenarios_EarlyStage_Undecidable tests that a single 21-0 sweep
// leaves delta 21 with three sports remaining, and neither 22 nor 64 point swings fit in
// one sport, so the explicit undecidable entry is emitted
func TestScenarios_EarlyStage_Undecidable(t *testing.T) {
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-0",
		},
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 21, result.Delta)
	assert.Equal(t, 3, result.SportsRemaining)
	assert.Equal(t, 63, result.MaxRemainingPoints)

	assert.Equal(t, []string{EntryLeader, EntryHeader, EntryInfo}, entryTypes(result.Analysis))

	header := result.Analysis[1]
	assert.Equal(t, 3, header.Facts["remaining"])
	assert.Equal(t, 63, header.Facts["points"])

	assert.Contains(t, result.Analysis[2].Text, "cannot be decided in Badminton alone")
}

// TestScenarios_EarlyStage_ClinchPossible tests that a near decided match reports the
// example score that would put it beyond reach after the next sport
func TestScenarios_EarlyStage_ClinchPossible(t *testing.T) {
	// delta 40 with three sports to play: in progress (40 <= 63), and after badminton
	// 42 points remain, so a swing of 42-40+1 = 3 (21-18) ends it early
	result := Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "45-5",
		},
		PlayerA: "Anna",
		PlayerB: "Ben",
	})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 40, result.Delta)

	clinch := findEntry(result.Analysis, EntryClinchPossible)
	assert.NotNil(t, clinch)
	assert.Contains(t, clinch.Text, "Anna can already put the match beyond reach by winning Badminton 21-18")
	assert.Equal(t, 3, clinch.Facts["gain"])
	assert.Equal(t, 18, clinch.Facts["score"])
	assert.Nil(t, findEntry(result.Analysis, EntryInfo))
}

// TestScenarios_NoSportsPlayed tests the all sports pending case: four sports remain and
// a clean 21-0 in the first cannot decide anything
func TestScenarios_NoSportsPlayed(t *testing.T) {
	result := Evaluate(shared.MatchInput{})

	assert.Equal(t, StatusInProgress, result.Status)
	assert.Equal(t, 0, result.TotalA)
	assert.Equal(t, 0, result.TotalB)
	assert.Equal(t, 4, result.SportsRemaining)
	assert.Equal(t, 84, result.MaxRemainingPoints)

	assert.Equal(t, []string{EntryTied, EntryHeader, EntryInfo}, entryTypes(result.Analysis))
	assert.Contains(t, result.Analysis[2].Text, "Table Tennis")
}
