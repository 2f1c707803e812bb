/* models.go
 * This file contains the structs and helper functions that relate to DB objects
 */

package store

import (
	"strings"

	"racketlon-bot/api/engine"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchRecord is one saved match: who recorded it, the raw per sport scores as entered,
// and the engine result snapshot at save time
type MatchRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"userid,omitempty"`
	Username string             `bson:"username,omitempty"`

	PlayerA string            `bson:"playera"`
	PlayerB string            `bson:"playerb"`
	Scores  map[string]string `bson:"scores"`

	Status string             `bson:"status"`
	Winner string             `bson:"winner,omitempty"`
	Result engine.MatchResult `bson:"result"`

	SavedAtEpoch int64 `bson:"savedatepoch"`
}

// HeadToHead is the running record between two players, derived from their saved matches
type HeadToHead struct {
	PlayerA   string `bson:"playera"`
	PlayerB   string `bson:"playerb"`
	Matches   int    `bson:"matches"`
	WinsA     int    `bson:"winsa"`
	WinsB     int    `bson:"winsb"`
	Gummiarms int    `bson:"gummiarms"`
	Ongoing   int    `bson:"ongoing"`
}

// InvolvesPlayer reports whether a record features the named player, case insensitively
func (r MatchRecord) InvolvesPlayer(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ToLower(r.PlayerA) == name || strings.ToLower(r.PlayerB) == name
}

// AggregateHeadToHead folds saved records between two players into a head to head
// record. Pure so it can be tested without a database; the store methods feed it.
func AggregateHeadToHead(playerA string, playerB string, records []MatchRecord) HeadToHead {
	h := HeadToHead{PlayerA: playerA, PlayerB: playerB}

	for _, record := range records {
		if !samePairing(record, playerA, playerB) {
			continue
		}
		h.Matches++

		switch record.Status {
		case string(engine.StatusGummiarm):
			h.Gummiarms++
		case string(engine.StatusFinished):
			if strings.EqualFold(record.Winner, playerA) {
				h.WinsA++
			} else if strings.EqualFold(record.Winner, playerB) {
				h.WinsB++
			}
		default:
			h.Ongoing++
		}
	}
	return h
}

// samePairing reports whether a record is between the two named players, in either order
func samePairing(r MatchRecord, playerA string, playerB string) bool {
	forward := strings.EqualFold(r.PlayerA, playerA) && strings.EqualFold(r.PlayerB, playerB)
	reverse := strings.EqualFold(r.PlayerA, playerB) && strings.EqualFold(r.PlayerB, playerA)
	return forward || reverse
}
