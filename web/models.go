/* models.go
 * Contains the configuration and request/response shapes for the HTTP server
 */

package web

import (
	"racketlon-bot/api/api"
	"racketlon-bot/api/shared"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that exposes the analysis engine and the scorecard webhook
type Server struct {
	api *api.API
}

// analyzeRequest is the body of POST /api/analyze. Scores are raw per sport strings; the
// engine treats anything malformed as an unplayed sport so validation happens nowhere else.
type analyzeRequest struct {
	Scores  map[shared.Sport]string `json:"scores"`
	PlayerA string                  `json:"playerA"`
	PlayerB string                  `json:"playerB"`
}

// scorecardEvent is the body the OCR pipeline posts when a scorecard image has been
// processed and is ready to import
type scorecardEvent struct {
	ImageURL string `json:"image_url"`
	Source   string `json:"source"`
}

// errorResponse is the uniform JSON error body
type errorResponse struct {
	Error string `json:"error"`
}
