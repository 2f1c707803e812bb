/* api.go
 * This file contains the public methods for interacting with this package. For consistent
 * results, functions should only be called from this file, not the engine, store or
 * external sub packages directly.
 */

package api

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"racketlon-bot/api/engine"
	"racketlon-bot/api/external"
	"racketlon-bot/api/shared"
	"racketlon-bot/api/store"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// API provides methods for interacting with the racketlon bot data layer
type API struct {
	Store     store.Interface
	Extractor external.Extractor
}

// NewAPI creates a new API instance with the provided configuration.
// Preconditions: receives the database name, mongo URI, and the OCR service base URL and
// api key; the OCR values may be empty when scorecard import is not needed
// Postconditions: returns the API, or an error if a collaborator failed to initialise
func NewAPI(dbName string, mongoURI string, ocrURL string, ocrKey string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	a := &API{Store: s}

	if ocrURL != "" {
		extractor, err := external.NewClient(ocrURL, ocrKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ocr client: %w", err)
		}
		a.Extractor = extractor
	}

	return a, nil
}

// AnalyzeMatch computes the live standing and tactical analysis for a match. Pure pass
// through to the engine: no persistence, no error path, safe for concurrent callers.
func (a *API) AnalyzeMatch(input shared.MatchInput) engine.MatchResult {
	return engine.Evaluate(input)
}

// ReportMatch computes the analysis and renders it as a chat ready text report
func (a *API) ReportMatch(input shared.MatchInput) string {
	return engine.Evaluate(input).Report()
}

// SaveMatch computes the analysis and persists the match for the recording user.
// Preconditions: receives the user recording the match and the match input
// Postconditions: returns the evaluated result after storing it, or an error if the
// store operation fails
func (a *API) SaveMatch(user shared.User, input shared.MatchInput) (engine.MatchResult, error) {
	result := engine.Evaluate(input)

	if err := a.Store.StoreMatchRecord(user, input, result); err != nil {
		return engine.MatchResult{}, err
	}
	return result, nil
}

// MatchHistory fetches the saved matches involving a player and formats one summary line
// per match. The queried name is fuzzy matched against the stored player names, so
// "anna" finds matches recorded for "Anna Svensson".
func (a *API) MatchHistory(playerName string) ([]string, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, fmt.Errorf("a player name is required")
	}

	records, err := a.Store.GetMatchRecords("")
	if err != nil {
		return nil, err
	}

	resolved, ok := resolvePlayerName(playerName, records)
	if !ok {
		return nil, fmt.Errorf("no saved matches mention a player named '%s'", playerName)
	}

	var lines []string
	for _, record := range records {
		if !record.InvolvesPlayer(resolved) {
			continue
		}
		lines = append(lines, formatRecordLine(record))
	}
	return lines, nil
}

// HeadToHead derives the record between two players from their saved matches and renders
// a summary. Both names are fuzzy matched against the stored history first.
func (a *API) HeadToHead(playerA string, playerB string) (string, error) {
	records, err := a.Store.GetMatchRecords("")
	if err != nil {
		return "", err
	}

	nameA, okA := resolvePlayerName(playerA, records)
	nameB, okB := resolvePlayerName(playerB, records)
	if !okA || !okB {
		return "", fmt.Errorf("no saved matches for that pairing")
	}

	h, err := a.Store.ComputeHeadToHead(nameA, nameB)
	if err != nil {
		return "", err
	}

	if h.Matches == 0 {
		return fmt.Sprintf("%s and %s have no saved matches against each other.", nameA, nameB), nil
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s vs %s: %d matches\n", h.PlayerA, h.PlayerB, h.Matches))
	out.WriteString(fmt.Sprintf("%s wins: %d\n", h.PlayerA, h.WinsA))
	out.WriteString(fmt.Sprintf("%s wins: %d\n", h.PlayerB, h.WinsB))
	if h.Gummiarms > 0 {
		out.WriteString(fmt.Sprintf("Decided on a gummiarm point: %d\n", h.Gummiarms))
	}
	if h.Ongoing > 0 {
		out.WriteString(fmt.Sprintf("Unfinished: %d\n", h.Ongoing))
	}
	return out.String(), nil
}

// ImportScorecard runs a scorecard photo through the OCR collaborator and analyses the
// structured guess. OCR failure is this function's error; it is never folded into a half
// formed engine result.
// Preconditions: receives a context and a publicly reachable image URL
// Postconditions: returns the guess and the evaluated result, or an error if extraction
// failed or no OCR service is configured
func (a *API) ImportScorecard(ctx context.Context, imageURL string) (ScorecardImport, error) {
	if a.Extractor == nil {
		return ScorecardImport{}, fmt.Errorf("no ocr service is configured")
	}

	guess, err := a.Extractor.ExtractScorecard(ctx, imageURL)
	if err != nil {
		return ScorecardImport{}, fmt.Errorf("scorecard extraction failed: %w", err)
	}

	return ScorecardImport{
		Guess:  guess,
		Result: engine.Evaluate(guess.MatchInput()),
	}, nil
}

// resolvePlayerName fuzzy matches a queried name against the player names present in the
// saved history, preferring an exact match when several candidates rank
func resolvePlayerName(query string, records []store.MatchRecord) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	lookup := make(map[string]string)
	var known []string
	for _, record := range records {
		for _, name := range []string{record.PlayerA, record.PlayerB} {
			lower := strings.ToLower(name)
			if _, seen := lookup[lower]; !seen && name != "" {
				lookup[lower] = name
				known = append(known, lower)
			}
		}
	}

	lowerQuery := strings.ToLower(query)
	ranked := fuzzy.RankFind(lowerQuery, known)
	if len(ranked) == 0 {
		return "", false
	}

	for _, candidate := range ranked {
		if candidate.Target == lowerQuery {
			return lookup[candidate.Target], true
		}
	}
	sort.Sort(ranked)
	return lookup[ranked[0].Target], true
}

// formatRecordLine renders one saved match as a history line
func formatRecordLine(record store.MatchRecord) string {
	switch record.Status {
	case string(engine.StatusFinished):
		return fmt.Sprintf("- %s %d-%d %s (winner: %s)",
			record.PlayerA, record.Result.TotalA, record.Result.TotalB, record.PlayerB, record.Winner)
	case string(engine.StatusGummiarm):
		return fmt.Sprintf("- %s %d-%d %s (gummiarm)",
			record.PlayerA, record.Result.TotalA, record.Result.TotalB, record.PlayerB)
	default:
		return fmt.Sprintf("- %s %d-%d %s (unfinished)",
			record.PlayerA, record.Result.TotalA, record.Result.TotalB, record.PlayerB)
	}
}
