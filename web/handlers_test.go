/* handlers_test.go
 * Contains unit tests for the HTTP handlers using httptest and the mock data layer
 */

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"racketlon-bot/api/api"
	"racketlon-bot/api/engine"
	"racketlon-bot/api/store"

	"github.com/stretchr/testify/assert"
)

// newTestServer wires a Server to the mock store
func newTestServer() (*Server, *api.MockStore) {
	mockStore := &api.MockStore{Records: store.CreateSampleRecords("Anna Svensson", "Ben Olsen")}
	return &Server{api: &api.API{Store: mockStore}}, mockStore
}

// TestAnalyzeHandler tests the analysis endpoint end to end
func TestAnalyzeHandler(t *testing.T) {
	s, _ := newTestServer()

	body := `{"scores":{"table-tennis":"21-15","badminton":"21-15","squash":"21-15"},"playerA":"Anna","playerB":"Ben"}`
	r := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.AnalyzeHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var result engine.MatchResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, engine.StatusInProgress, result.Status)
	assert.Equal(t, 63, result.TotalA)
	assert.Equal(t, 45, result.TotalB)
	assert.Equal(t, 18, result.Delta)
	assert.Equal(t, 1, result.SportsRemaining)
	assert.NotEmpty(t, result.Analysis)
}

// TestAnalyzeHandler_MalformedScoresStillAnalyze tests the lenient contract over HTTP:
// garbage scores are unplayed sports, not request errors
func TestAnalyzeHandler_MalformedScoresStillAnalyze(t *testing.T) {
	s, _ := newTestServer()

	body := `{"scores":{"table-tennis":"garbage","badminton":"21–15"}}`
	r := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.AnalyzeHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var result engine.MatchResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.SportsPlayed)
	assert.Equal(t, engine.StatusInProgress, result.Status)
}

// TestAnalyzeHandler_BadBody tests the unreadable body error path
func TestAnalyzeHandler_BadBody(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.AnalyzeHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestAnalyzeHandler_MethodNotAllowed tests that GET is rejected
func TestAnalyzeHandler_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	w := httptest.NewRecorder()

	s.AnalyzeHandler(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// TestMatchesHandler_All tests listing every saved match
func TestMatchesHandler_All(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	w := httptest.NewRecorder()

	s.MatchesHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var lines []string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 4)
}

// TestMatchesHandler_PlayerFilter tests the fuzzy player filter
func TestMatchesHandler_PlayerFilter(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodGet, "/api/matches?player=anna", nil)
	w := httptest.NewRecorder()

	s.MatchesHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var lines []string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Anna Svensson")
}

// TestMatchesHandler_UnknownPlayer tests the not found path
func TestMatchesHandler_UnknownPlayer(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodGet, "/api/matches?player=zorro", nil)
	w := httptest.NewRecorder()

	s.MatchesHandler(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestScorecardWebhookHandler_BadBody tests the webhook body validation
func TestScorecardWebhookHandler_BadBody(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodPost, "/webhooks/scorecard", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.ScorecardWebhookHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestScorecardWebhookHandler_MissingImage tests that an event without an image URL is rejected
func TestScorecardWebhookHandler_MissingImage(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodPost, "/webhooks/scorecard", strings.NewReader(`{"source":"club-scanner"}`))
	w := httptest.NewRecorder()

	s.ScorecardWebhookHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestScorecardWebhookHandler_AcceptsEvent tests that a well formed event is accepted
// immediately; the import itself runs asynchronously and fails quietly without an OCR
// service configured
func TestScorecardWebhookHandler_AcceptsEvent(t *testing.T) {
	s, _ := newTestServer()

	r := httptest.NewRequest(http.MethodPost, "/webhooks/scorecard", strings.NewReader(`{"image_url":"https://example.com/card.jpg","source":"club-scanner"}`))
	w := httptest.NewRecorder()

	s.ScorecardWebhookHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
