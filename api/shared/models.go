/* models.go
 * This file contains the types and helper functions that are shared between sub packages:
 * the fixed racketlon sport order, per-sport display labels and the 21 point set cap
 */

package shared

// MaxSetPoints is the racketlon per-set point cap. Every bounding calculation
// in the engine is derived from it (one sport can swing the margin by at most 21 points).
const MaxSetPoints = 21

// Sport identifies one of the four racketlon sports. The identifiers are a
// stable wire contract shared with the web layer and the OCR collaborator.
type Sport string

const (
	TableTennis Sport = "table-tennis"
	Badminton   Sport = "badminton"
	Squash      Sport = "squash"
	Tennis      Sport = "tennis"
)

// SportOrder is the fixed play order of a racketlon match.
var SportOrder = []Sport{TableTennis, Badminton, Squash, Tennis}

// Label returns the human readable name for a sport
func (s Sport) Label() string {
	switch s {
	case TableTennis:
		return "Table Tennis"
	case Badminton:
		return "Badminton"
	case Squash:
		return "Squash"
	case Tennis:
		return "Tennis"
	}
	return string(s)
}

// MatchInput is the raw engine input: one optional score string per sport
// plus two optional display names. Absent or malformed score strings mean
// the sport has not been played yet.
type MatchInput struct {
	Scores  map[Sport]string `json:"scores"`
	PlayerA string           `json:"playerA"`
	PlayerB string           `json:"playerB"`
}

// PlayerNames returns the display names for both players, substituting the
// default placeholders when a name is blank
func (m MatchInput) PlayerNames() (string, string) {
	a, b := m.PlayerA, m.PlayerB
	if a == "" {
		a = "Player A"
	}
	if b == "" {
		b = "Player B"
	}
	return a, b
}

// User represents the Discord identity attached to a stored match
type User struct {
	UserID   string
	Username string
}
