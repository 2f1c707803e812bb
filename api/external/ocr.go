/* ocr.go
 * Contains the client for the scorecard OCR service. The service takes an image URL and
 * returns the recognised text; turning that text into a structured guess happens in
 * parser.go. Failures here stay here: the caller reports them on its own channel and the
 * engine never sees a half formed result.
 */

package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the scorecard OCR service
type Client struct {
	BaseURL string
	APIKey  string

	http    *http.Client
	limiter *rate.Limiter
}

// Extractor is the subset of the client the api facade depends on, for mocking in tests
type Extractor interface {
	ExtractScorecard(ctx context.Context, imageURL string) (ScorecardGuess, error)
}

// Ensure Client implements Extractor
var _ Extractor = (*Client)(nil)

// NewClient creates an OCR client.
// Preconditions: receives the service base URL and api key; the key may be empty for
// services that do not require one
// Postconditions: returns a client with a 30s request timeout and outbound calls
// limited to one per second (the OCR services this targets meter by request)
func NewClient(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("ocr base url is required but none was provided")
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}, nil
}

// ExtractScorecard runs one image through the OCR service and parses the recognised
// text into a structured guess.
// Preconditions: receives a context and a publicly reachable image URL
// Postconditions: returns the guess, or an error when the service is unreachable,
// rejects the request or recognises nothing. Unreadable score lines inside otherwise
// recognised text are not errors; they come back as absent sports.
func (c *Client) ExtractScorecard(ctx context.Context, imageURL string) (ScorecardGuess, error) {
	if imageURL == "" {
		return ScorecardGuess{}, fmt.Errorf("image url is required but none was provided")
	}

	text, confidence, err := c.recognise(ctx, imageURL)
	if err != nil {
		return ScorecardGuess{}, err
	}

	guess := ParseScorecardText(text)
	guess.Confidence = confidence
	return guess, nil
}

// recognise performs the HTTP round trip and returns the raw recognised text
func (c *Client) recognise(ctx context.Context, imageURL string) (string, float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", 0, err
	}

	payload, err := json.Marshal(ocrRequest{ImageURL: imageURL})
	if err != nil {
		return "", 0, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/recognise", bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create ocr request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "RacketlonScorecardReader/1.0")
	if c.APIKey != "" {
		request.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return "", 0, fmt.Errorf("ocr request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read ocr response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("ocr service returned status %d", response.StatusCode)
	}

	var parsed ocrResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, fmt.Errorf("error parsing ocr response: %w", err)
	}
	if parsed.Error != "" {
		return "", 0, fmt.Errorf("ocr service error: %s", parsed.Error)
	}
	if parsed.Text == "" {
		return "", 0, fmt.Errorf("ocr service recognised no text")
	}

	return parsed.Text, parsed.Confidence, nil
}
