/* models.go
 * Contains the structs returned by the api facade
 */

package api

import (
	"racketlon-bot/api/engine"
	"racketlon-bot/api/external"
)

// ScorecardImport pairs the OCR guess with the engine's reading of it, so callers can
// show both what was recognised and what it means for the match
type ScorecardImport struct {
	Guess  external.ScorecardGuess
	Result engine.MatchResult
}
