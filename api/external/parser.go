/* parser.go
 * Contains the logic for turning raw OCR text into a structured scorecard guess. Scorecard
 * photos vary wildly, so this is best effort all the way down: every line that pairs a
 * recognisable sport label with something score shaped contributes, everything else is
 * ignored. Sport labels are matched fuzzily since OCR mangles them routinely.
 */

package external

import (
	"regexp"
	"sort"
	"strings"

	"racketlon-bot/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// scorePattern accepts the separators OCR typically produces for a score: hyphen,
// en dash, colon, and stray whitespace around them
var scorePattern = regexp.MustCompile(`(\d{1,3})\s*[-–:]\s*(\d{1,3})`)

// namesPattern matches a "Player One vs Player Two" header line
var namesPattern = regexp.MustCompile(`(?i)^\s*(.+?)\s+vs\.?\s+(.+?)\s*$`)

// sportAliases maps the label spellings seen on scorecards to sport identifiers.
// Longer aliases are tried first so "table tennis" never resolves to tennis.
var sportAliases = map[string]shared.Sport{
	"table tennis": shared.TableTennis,
	"tabletennis":  shared.TableTennis,
	"ping pong":    shared.TableTennis,
	"tt":           shared.TableTennis,
	"badminton":    shared.Badminton,
	"bad":          shared.Badminton,
	"bm":           shared.Badminton,
	"squash":       shared.Squash,
	"sq":           shared.Squash,
	"tennis":       shared.Tennis,
	"te":           shared.Tennis,
}

// ParseScorecardText parses recognised OCR text into a scorecard guess.
// Preconditions: receives the raw recognised text, possibly empty or garbled
// Postconditions: returns a guess with a raw score string for every sport whose line was
// recognisable; never returns an error, unrecognisable lines just contribute nothing
func ParseScorecardText(text string) ScorecardGuess {
	guess := ScorecardGuess{
		RawText: text,
		Scores:  make(map[shared.Sport]string),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		score := scorePattern.FindStringSubmatch(line)
		if score == nil {
			// a line without a score may still name the players
			if guess.PlayerA == "" {
				if names := namesPattern.FindStringSubmatch(line); names != nil {
					guess.PlayerA = strings.TrimSpace(names[1])
					guess.PlayerB = strings.TrimSpace(names[2])
				}
			}
			continue
		}

		label := strings.TrimSpace(line[:strings.Index(line, score[0])])
		sport, ok := matchSportLabel(label)
		if !ok {
			continue
		}

		// first recognised line per sport wins
		if _, seen := guess.Scores[sport]; seen {
			continue
		}
		guess.Scores[sport] = score[1] + "-" + score[2]
	}

	return guess
}

// matchSportLabel resolves a scorecard label to a sport, first by substring against the
// known aliases (longest first), then fuzzily for OCR mangled spellings
func matchSportLabel(label string) (shared.Sport, bool) {
	label = strings.ToLower(strings.Trim(label, " .:|"))
	if label == "" {
		return "", false
	}

	aliases := make([]string, 0, len(sportAliases))
	for alias := range sportAliases {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		return len(aliases[i]) > len(aliases[j])
	})

	for _, alias := range aliases {
		if strings.Contains(label, alias) {
			return sportAliases[alias], true
		}
	}

	// fuzzy fallback; short aliases are excluded as two letters match nearly anything
	var candidates []string
	for _, alias := range aliases {
		if len(alias) > 3 {
			candidates = append(candidates, alias)
		}
	}
	ranked := fuzzy.RankFindFold(label, candidates)
	if len(ranked) == 0 {
		return "", false
	}
	sort.Sort(ranked)
	return sportAliases[ranked[0].Target], true
}
