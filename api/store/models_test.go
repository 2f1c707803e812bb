/* models_test.go
 * Contains unit tests for the store models and the head to head aggregation
 */

package store

import (
	"testing"

	"racketlon-bot/api/engine"

	"github.com/stretchr/testify/assert"
)

// TestMatchRecord_InvolvesPlayer tests case insensitive player matching
func TestMatchRecord_InvolvesPlayer(t *testing.T) {
	record := MatchRecord{PlayerA: "Anna", PlayerB: "Ben"}

	assert.True(t, record.InvolvesPlayer("Anna"))
	assert.True(t, record.InvolvesPlayer("anna"))
	assert.True(t, record.InvolvesPlayer(" BEN "))
	assert.False(t, record.InvolvesPlayer("Clara"))
}

// TestAggregateHeadToHead tests the full sample history: one win each way, one gummiarm
// and one unfinished match
func TestAggregateHeadToHead(t *testing.T) {
	records := CreateSampleRecords("Anna", "Ben")

	h := AggregateHeadToHead("Anna", "Ben", records)

	assert.Equal(t, 4, h.Matches)
	assert.Equal(t, 1, h.WinsA)
	assert.Equal(t, 1, h.WinsB)
	assert.Equal(t, 1, h.Gummiarms)
	assert.Equal(t, 1, h.Ongoing)
}

// TestAggregateHeadToHead_OrderIndependent tests that swapping the queried player order
// mirrors the win counts
func TestAggregateHeadToHead_OrderIndependent(t *testing.T) {
	records := CreateSampleRecords("Anna", "Ben")

	forward := AggregateHeadToHead("Anna", "Ben", records)
	reverse := AggregateHeadToHead("Ben", "Anna", records)

	assert.Equal(t, forward.Matches, reverse.Matches)
	assert.Equal(t, forward.WinsA, reverse.WinsB)
	assert.Equal(t, forward.WinsB, reverse.WinsA)
	assert.Equal(t, forward.Gummiarms, reverse.Gummiarms)
}

// TestAggregateHeadToHead_IgnoresOtherPairings tests that matches against third players
// do not leak into the record
func TestAggregateHeadToHead_IgnoresOtherPairings(t *testing.T) {
	records := append(CreateSampleRecords("Anna", "Ben"), MatchRecord{
		PlayerA: "Anna", PlayerB: "Clara",
		Status: string(engine.StatusFinished), Winner: "Anna",
	})

	h := AggregateHeadToHead("Anna", "Ben", records)

	assert.Equal(t, 4, h.Matches)
	assert.Equal(t, 1, h.WinsA)
}

// TestAggregateHeadToHead_Empty tests the no history case
func TestAggregateHeadToHead_Empty(t *testing.T) {
	h := AggregateHeadToHead("Anna", "Ben", nil)

	assert.Equal(t, 0, h.Matches)
	assert.Equal(t, "Anna", h.PlayerA)
	assert.Equal(t, "Ben", h.PlayerB)
}

// TestPairKey tests the order independent pairing key
func TestPairKey(t *testing.T) {
	assert.Equal(t, pairKey("Anna", "Ben"), pairKey("Ben", "Anna"))
	assert.Equal(t, "anna|ben", pairKey(" Ben", "Anna "))
}
