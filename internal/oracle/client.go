// Package oracle implements the client for the external route-generation
// oracle (Gemini's generateContent REST API). The oracle is an opaque,
// untrusted collaborator: this package only serializes the request, enforces
// the response schema at decode time, and classifies transport failures.
// All semantic trust decisions happen downstream in the solution validator.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// DefaultBaseURL is the production Generative Language API endpoint.
// Tests override it with an httptest server URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Config carries the oracle connection settings from the config package.
type Config struct {
	// APIKey is the required credential. An empty key fails every Solve
	// before any network I/O happens.
	APIKey string
	// Model is the generation model name, e.g. "gemini-3-pro-preview".
	Model string
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string
	// Timeout is the hard client-side deadline per solve call.
	Timeout time.Duration
}

// Client calls the generation oracle over HTTPS. Safe for concurrent use.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

// NewClient constructs a Client from cfg, filling in defaults for BaseURL and
// Timeout. The API key is not validated here; Solve checks it per call so the
// configuration error is reported on the request path that needs it.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(base, "/"),
		timeout: timeout,
		httpc:   &http.Client{},
	}
}

// generateContent request/response wire types. Only the fields this client
// reads or writes are modeled.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature"`
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Solve submits the trip preferences to the oracle and returns the raw,
// not-yet-validated itinerary it produced.
//
// Failure classification, in order of detection:
//   - missing credential → domain.ErrConfiguration (no network attempt)
//   - deadline expired → domain.ErrOracleTimeout
//   - transport error or non-2xx status → domain.ErrOracleUnavailable
//   - no candidate text in the response → domain.ErrOracleEmptyResponse
//   - candidate text that does not decode as the schema → domain.ErrOracleMalformedResponse
func (c *Client) Solve(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error) {
	if c.apiKey == "" {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: GEMINI_API_KEY is not set: %w", domain.ErrConfiguration)
	}

	prompt, err := BuildPrompt(prefs)
	if err != nil {
		return domain.ItinerarySolution{}, err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			// Low temperature keeps the oracle as deterministic as it gets.
			Temperature:      0.1,
			ResponseMIMEType: "application/json",
			ResponseSchema:   ItinerarySchema(),
		},
	})
	if err != nil {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return domain.ItinerarySolution{}, fmt.Errorf("oracle: %v: %w", err, domain.ErrOracleTimeout)
		}
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: %v: %w", err, domain.ErrOracleUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a bounded slice of the error body for the logs.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ItinerarySolution{}, fmt.Errorf(
			"oracle: status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(detail)), domain.ErrOracleUnavailable)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: decode envelope: %v: %w", err, domain.ErrOracleMalformedResponse)
	}

	text := candidateText(gen)
	if text == "" {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: no candidate text: %w", domain.ErrOracleEmptyResponse)
	}

	var solution domain.ItinerarySolution
	if err := json.Unmarshal([]byte(text), &solution); err != nil {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: decode itinerary: %v: %w", err, domain.ErrOracleMalformedResponse)
	}
	if !solution.TripType.Valid() {
		return domain.ItinerarySolution{}, fmt.Errorf("oracle: unknown trip type %q: %w", solution.TripType, domain.ErrOracleMalformedResponse)
	}

	return solution, nil
}

// candidateText extracts the first non-empty text part of the first
// candidate. The schema constrains the oracle to a single JSON document, so
// anything beyond the first part is ignored.
func candidateText(gen generateResponse) string {
	for _, cand := range gen.Candidates {
		for _, p := range cand.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				return t
			}
		}
	}
	return ""
}
