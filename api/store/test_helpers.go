/* test_helpers.go
 * Contains test helper functions and sample data for store package tests
 */

package store

import (
	"context"

	"racketlon-bot/api/engine"
	"racketlon-bot/api/shared"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	s, err := NewStore("test_racketlon", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s.Client != nil {
			s.Database.Drop(context.TODO())
			s.Client.Disconnect(context.TODO())
		}
	}

	return s, cleanup, nil
}

// CreateSampleResult evaluates a sample finished match for use in tests
func CreateSampleResult(playerA string, playerB string) engine.MatchResult {
	return engine.Evaluate(shared.MatchInput{
		Scores: map[shared.Sport]string{
			shared.TableTennis: "21-15",
			shared.Badminton:   "18-21",
			shared.Squash:      "21-12",
			shared.Tennis:      "14-21",
		},
		PlayerA: playerA,
		PlayerB: playerB,
	})
}

// CreateSampleRecords creates a small saved match history between two players:
// one win each way, one gummiarm and one unfinished match
func CreateSampleRecords(playerA string, playerB string) []MatchRecord {
	finishedA := CreateSampleResult(playerA, playerB)

	return []MatchRecord{
		{
			PlayerA: playerA, PlayerB: playerB,
			Status: string(engine.StatusFinished), Winner: playerA,
			Result: finishedA, SavedAtEpoch: 1700000000,
		},
		{
			PlayerA: playerB, PlayerB: playerA,
			Status: string(engine.StatusFinished), Winner: playerB,
			SavedAtEpoch: 1700010000,
		},
		{
			PlayerA: playerA, PlayerB: playerB,
			Status:       string(engine.StatusGummiarm),
			SavedAtEpoch: 1700020000,
		},
		{
			PlayerA: playerA, PlayerB: playerB,
			Status:       string(engine.StatusInProgress),
			SavedAtEpoch: 1700030000,
		},
	}
}
