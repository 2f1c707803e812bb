/* test_mocks.go
 * Contains mock implementations of the store interface and the OCR extractor for
 * api package tests
 */

package api

import (
	"context"

	"racketlon-bot/api/engine"
	"racketlon-bot/api/external"
	"racketlon-bot/api/shared"
	"racketlon-bot/api/store"
)

// MockStore implements store.Interface with canned data for testing
type MockStore struct {
	Records       []store.MatchRecord
	StoredRecords []store.MatchRecord
	ErrorToReturn error
}

var _ store.Interface = (*MockStore)(nil)

func (m *MockStore) StoreMatchRecord(user shared.User, input shared.MatchInput, result engine.MatchResult) error {
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.StoredRecords = append(m.StoredRecords, store.MatchRecord{
		UserID:   user.UserID,
		Username: user.Username,
		PlayerA:  result.PlayerA,
		PlayerB:  result.PlayerB,
		Status:   string(result.Status),
		Winner:   result.Winner,
		Result:   result,
	})
	return nil
}

func (m *MockStore) GetMatchRecords(playerName string) ([]store.MatchRecord, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	if playerName == "" {
		return m.Records, nil
	}
	var filtered []store.MatchRecord
	for _, record := range m.Records {
		if record.InvolvesPlayer(playerName) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (m *MockStore) ComputeHeadToHead(playerA string, playerB string) (store.HeadToHead, error) {
	if m.ErrorToReturn != nil {
		return store.HeadToHead{}, m.ErrorToReturn
	}
	return store.AggregateHeadToHead(playerA, playerB, m.Records), nil
}

func (m *MockStore) GetHeadToHead(playerA string, playerB string) (store.HeadToHead, error) {
	return m.ComputeHeadToHead(playerA, playerB)
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return nil
}

// MockExtractor implements external.Extractor with a canned guess
type MockExtractor struct {
	Guess         external.ScorecardGuess
	ErrorToReturn error
	LastImageURL  string
}

var _ external.Extractor = (*MockExtractor)(nil)

func (m *MockExtractor) ExtractScorecard(ctx context.Context, imageURL string) (external.ScorecardGuess, error) {
	m.LastImageURL = imageURL
	if m.ErrorToReturn != nil {
		return external.ScorecardGuess{}, m.ErrorToReturn
	}
	return m.Guess, nil
}
