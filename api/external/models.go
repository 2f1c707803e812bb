/* models.go
 * This file contains the models used by the external package when talking to the
 * scorecard OCR service
 */

package external

import "racketlon-bot/api/shared"

// ScorecardGuess is the best effort structured reading of a scorecard photo. Scores
// holds a raw score string per recognised sport; sports the OCR could not read are
// simply absent, and the engine treats absent the same as unplayed. Confidence is the
// OCR service's own estimate in [0,1].
type ScorecardGuess struct {
	RawText    string
	Scores     map[shared.Sport]string
	PlayerA    string
	PlayerB    string
	Confidence float64
}

// MatchInput converts the guess into engine input. Nothing is validated here on
// purpose: the engine's lenient parser is the single place garbled scores get handled.
func (g ScorecardGuess) MatchInput() shared.MatchInput {
	return shared.MatchInput{
		Scores:  g.Scores,
		PlayerA: g.PlayerA,
		PlayerB: g.PlayerB,
	}
}

// ocrResponse is the wire shape of the OCR service response
type ocrResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// ocrRequest is the wire shape of the OCR service request
type ocrRequest struct {
	ImageURL string `json:"image_url"`
}
