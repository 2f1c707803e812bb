/* head_to_head.go
 * Contains the methods for interacting with the head_to_head collection. The record is
 * derived from saved matches and cached per player pairing, recomputed on demand.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComputeHeadToHead derives the head to head record between two players from the saved
// matches and caches it in the db.
// Preconditions: receives both player names as entered on their scorecards
// Postconditions: returns the derived record, or an error if it occurs
func (s *Store) ComputeHeadToHead(playerA string, playerB string) (HeadToHead, error) {
	if playerA == "" || playerB == "" {
		return HeadToHead{}, fmt.Errorf("both player names are required")
	}

	records, err := s.GetMatchRecords("")
	if err != nil {
		return HeadToHead{}, err
	}

	h := AggregateHeadToHead(playerA, playerB, records)
	if err := s.storeHeadToHead(h); err != nil {
		return HeadToHead{}, err
	}
	return h, nil
}

// GetHeadToHead fetches the cached head to head record for a pairing.
// Postconditions: returns the record, mongo.ErrNoDocuments when the pairing has never
// been computed, or another error if it occurs
func (s *Store) GetHeadToHead(playerA string, playerB string) (HeadToHead, error) {
	var h HeadToHead
	err := s.Collections.HeadToHead.FindOne(context.TODO(), bson.M{"pairkey": pairKey(playerA, playerB)}).Decode(&h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return HeadToHead{}, err
		}
		return HeadToHead{}, fmt.Errorf("failed to fetch head to head record: %w", err)
	}
	return h, nil
}

// storeHeadToHead inserts or updates the cached record for a pairing
func (s *Store) storeHeadToHead(h HeadToHead) error {
	key := pairKey(h.PlayerA, h.PlayerB)
	filter := bson.M{"pairkey": key}

	doc := bson.M{
		"pairkey":   key,
		"playera":   h.PlayerA,
		"playerb":   h.PlayerB,
		"matches":   h.Matches,
		"winsa":     h.WinsA,
		"winsb":     h.WinsB,
		"gummiarms": h.Gummiarms,
		"ongoing":   h.Ongoing,
	}

	var existing bson.M
	err := s.Collections.HeadToHead.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing record failed: %w", err)
	}

	if notFound {
		if _, err := s.Collections.HeadToHead.InsertOne(context.TODO(), doc); err != nil {
			return fmt.Errorf("head to head insert failed: %w", err)
		}
		return nil
	}

	if _, err := s.Collections.HeadToHead.UpdateOne(context.TODO(), filter, bson.M{"$set": doc}); err != nil {
		return fmt.Errorf("head to head update failed: %w", err)
	}
	return nil
}

// pairKey normalises a player pairing into an order independent lookup key
func pairKey(playerA string, playerB string) string {
	a := strings.ToLower(strings.TrimSpace(playerA))
	b := strings.ToLower(strings.TrimSpace(playerB))
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
