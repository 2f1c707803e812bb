/* handlers.go
 * Contains the HTTP handlers: live analysis, saved match listing and the scorecard
 * webhook that the OCR pipeline calls when an image is ready
 */

package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"racketlon-bot/api/shared"
)

// AnalyzeHandler handles POST /api/analyze: run the engine over the posted scores and
// return the full match result. The engine itself cannot fail; the only error path here
// is an unreadable request body.
func (s *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := s.api.AnalyzeMatch(shared.MatchInput{
		Scores:  req.Scores,
		PlayerA: req.PlayerA,
		PlayerB: req.PlayerB,
	})
	writeJSON(w, http.StatusOK, result)
}

// MatchesHandler handles GET /api/matches: list saved matches, optionally filtered by
// the player query parameter
func (s *Server) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	player := r.URL.Query().Get("player")

	var lines []string
	var err error
	if player == "" {
		records, recordsErr := s.api.Store.GetMatchRecords("")
		err = recordsErr
		for _, record := range records {
			lines = append(lines, record.PlayerA+" vs "+record.PlayerB)
		}
	} else {
		lines, err = s.api.MatchHistory(player)
	}
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, lines)
}

// ScorecardWebhookHandler handles POST /webhooks/scorecard. The OCR pipeline posts the
// image URL once processing finishes; the import runs asynchronously and the webhook
// returns fast. An import failure is logged and dropped: the engine never receives a
// half formed result from a failed extraction.
func (s *Server) ScorecardWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event scorecardEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.ImageURL == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log.Printf("scorecard event source=%s image=%s\n", event.Source, event.ImageURL)

	go func(e scorecardEvent) {
		imported, err := s.api.ImportScorecard(context.Background(), e.ImageURL)
		if err != nil {
			log.Println("scorecard import failed:", err)
			return
		}
		user := shared.User{UserID: "webhook", Username: e.Source}
		if _, err := s.api.SaveMatch(user, imported.Guess.MatchInput()); err != nil {
			log.Println("failed to save imported scorecard:", err)
		}
	}(event)

	w.WriteHeader(http.StatusOK)
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to encode response:", err)
	}
}
