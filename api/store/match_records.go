/* match_records.go
 * Contains the methods for interacting with the match_records collection
 */

package store

import (
	"context"
	"fmt"
	"time"

	"racketlon-bot/api/engine"
	"racketlon-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreMatchRecord saves an evaluated match to the db.
// Preconditions: receives the recording user, the raw input scores and the engine result
// Postconditions: inserts a new match record and returns nil, or an error if it occurs
func (s *Store) StoreMatchRecord(user shared.User, input shared.MatchInput, result engine.MatchResult) error {
	scores := make(map[string]string, len(input.Scores))
	for sport, raw := range input.Scores {
		scores[string(sport)] = raw
	}

	record := MatchRecord{
		UserID:       user.UserID,
		Username:     user.Username,
		PlayerA:      result.PlayerA,
		PlayerB:      result.PlayerB,
		Scores:       scores,
		Status:       string(result.Status),
		Winner:       result.Winner,
		Result:       result,
		SavedAtEpoch: time.Now().Unix(),
	}

	_, err := s.Collections.MatchRecords.InsertOne(context.TODO(), record)
	if err != nil {
		return fmt.Errorf("failed to insert match record: %w", err)
	}
	return nil
}

// GetMatchRecords fetches saved matches, newest first.
// Preconditions: receives a player name, which may be empty to fetch everything
// Postconditions: returns the matching records, or an error if it occurs. Name matching
// is done in memory since player names are stored as entered and compared between folds.
func (s *Store) GetMatchRecords(playerName string) ([]MatchRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "savedatepoch", Value: -1}})

	cursor, err := s.Collections.MatchRecords.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match records: %w", err)
	}
	defer cursor.Close(context.TODO())

	var records []MatchRecord
	if err := cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("failed to decode match records: %w", err)
	}

	if playerName == "" {
		return records, nil
	}

	var filtered []MatchRecord
	for _, record := range records {
		if record.InvolvesPlayer(playerName) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
