/* status.go
 * Contains the status classifier. Match state is a small set of tagged variants: each
 * state carries only the fields that mean something for it, and exposes a stable status
 * string used on the wire
 */

package engine

// Status is the stable wire form of a match state
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusGummiarm   Status = "gummiarm"
)

// State is the classified condition of a match. Exactly one of the three
// concrete variants below is produced for any input.
type State interface {
	Status() Status
}

// Finished is terminal: either all four sports are played with a nonzero margin,
// or the margin already exceeds the points left on the table (early clinch)
type Finished struct {
	Winner string
	Early  bool // decided before all four sports were played
}

func (f Finished) Status() Status {
	return StatusFinished
}

// Gummiarm is terminal: all four sports played, totals exactly level. The match
// goes to a single decisive point, conventionally played in tennis.
type Gummiarm struct{}

func (g Gummiarm) Status() Status {
	return StatusGummiarm
}

// InProgress carries the tactical scenario entries for an undecided match
type InProgress struct {
	Analysis []Entry
}

func (p InProgress) Status() Status {
	return StatusInProgress
}

// Classify derives the match state from the aggregate totals. Classification is a pure
// function of (sportsPlayed, delta, maxRemainingPoints); no state survives between calls.
// Preconditions: receives the aggregated Totals and both display names
// Postconditions: returns one of Finished, Gummiarm or InProgress. The InProgress variant
// is returned without analysis entries; the scenario generator fills them in.
func Classify(t Totals, nameA string, nameB string) State {
	if t.SportsRemaining == 0 {
		if t.Delta == 0 {
			return Gummiarm{}
		}
		return Finished{Winner: leaderName(t.Delta, nameA, nameB)}
	}

	if abs(t.Delta) > t.MaxRemainingPoints {
		return Finished{Winner: leaderName(t.Delta, nameA, nameB), Early: true}
	}

	return InProgress{}
}

// leaderName returns the name of the player the signed margin favours
func leaderName(delta int, nameA string, nameB string) string {
	if delta >= 0 {
		return nameA
	}
	return nameB
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
