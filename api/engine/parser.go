/* parser.go
 * Contains the lenient set score parser. Malformed input is never an error: scorecards arrive
 * from manual entry and from the OCR collaborator, and a garbled entry must degrade to
 * "not played" rather than abort the whole analysis
 */

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// SetScore holds the points both players scored in one sport
type SetScore struct {
	A int
	B int
}

// Margin returns the signed point swing of this set, positive favouring player A
func (s SetScore) Margin() int {
	return s.A - s.B
}

// String renders the canonical "A-B" form. Parsing this rendering yields the same pair.
func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.A, s.B)
}

// ParseSetScore parses a raw per sport score string into a SetScore.
// Preconditions: receives a raw string, which may be empty, blank or malformed
// Postconditions: returns a pointer to the parsed pair, or nil when the sport counts as
// not played: empty/blank input, a lone separator, or anything that is not
// "<digits>-<digits>" with optional whitespace around the separator
func ParseSetScore(raw string) *SetScore {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return nil
	}

	a, ok := parsePoints(parts[0])
	if !ok {
		return nil
	}
	b, ok := parsePoints(parts[1])
	if !ok {
		return nil
	}

	return &SetScore{A: a, B: b}
}

// parsePoints converts one side of a score string to a non negative integer.
// Only plain digit runs are accepted; signs, decimals and thousand separators are not scores.
func parsePoints(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
