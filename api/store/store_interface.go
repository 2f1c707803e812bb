/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"racketlon-bot/api/engine"
	"racketlon-bot/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	StoreMatchRecord(user shared.User, input shared.MatchInput, result engine.MatchResult) error
	GetMatchRecords(playerName string) ([]MatchRecord, error)
	ComputeHeadToHead(playerA string, playerB string) (HeadToHead, error)
	GetHeadToHead(playerA string, playerB string) (HeadToHead, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
