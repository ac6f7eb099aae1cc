// Package dictionary talks to WordsAPI and turns its answers into envelope fields.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sangpham2710/rekbot/internal/domain"
)

const (
	DefaultBaseURL     = "https://wordsapiv1.p.rapidapi.com"
	DefaultHost        = "wordsapiv1.p.rapidapi.com"
	DefaultSearchLimit = 10

	msgNoResponse = "API Server didn't respond"
)

// Config holds the WordsAPI endpoint and credentials.
type Config struct {
	BaseURL     string
	Host        string
	APIKey      string
	SearchLimit int
}

// Client fetches words from WordsAPI. Every call issues exactly one request.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Zero config fields fall back to the defaults.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = DefaultSearchLimit
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        logger.With("adapter", "wordsapi"),
	}
}

// Lookup fetches the full record of a word.
func (c *Client) Lookup(ctx context.Context, word string) (domain.WordRecord, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.WordRecord{}, domain.NewValidationError("word")
	}

	var payload apiWord
	if err := c.get(ctx, "/words/"+url.PathEscape(word), nil, &payload); err != nil {
		c.log.WarnContext(ctx, "wordsapi lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		return domain.WordRecord{}, domain.NewUpstreamError(fmt.Sprintf("Cannot find requested word: %q", word), err)
	}

	rec := toRecord(payload)
	if rec.Word == "" {
		rec.Word = word
	}

	c.log.DebugContext(ctx, "wordsapi lookup",
		slog.String("word", rec.Word),
		slog.Int("entries", len(rec.Entries)),
	)
	return rec, nil
}

// Random fetches a random word.
func (c *Client) Random(ctx context.Context) (string, error) {
	var payload apiWord
	query := url.Values{"random": {"true"}}
	if err := c.get(ctx, "/words/", query, &payload); err != nil {
		c.log.WarnContext(ctx, "wordsapi random failed", slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(msgNoResponse, err)
	}
	if payload.Word == "" {
		return "", domain.NewUpstreamError(msgNoResponse, fmt.Errorf("wordsapi: random: empty word"))
	}

	c.log.DebugContext(ctx, "wordsapi random", slog.String("word", payload.Word))
	return payload.Word, nil
}

// Search lists the words matching a letter pattern, capped at the search limit.
func (c *Client) Search(ctx context.Context, pattern string) (domain.SearchResult, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return domain.SearchResult{}, domain.NewValidationError("query")
	}

	query := url.Values{
		"letterPattern": {pattern},
		"limit":         {strconv.Itoa(c.cfg.SearchLimit)},
	}
	var payload apiSearch
	if err := c.get(ctx, "/words/", query, &payload); err != nil {
		c.log.WarnContext(ctx, "wordsapi search failed", slog.String("pattern", pattern), slog.String("error", err.Error()))
		return domain.SearchResult{}, domain.NewUpstreamError(msgNoResponse, err)
	}

	words := payload.Results.Data
	if words == nil {
		words = []string{}
	}
	c.log.DebugContext(ctx, "wordsapi search",
		slog.String("pattern", pattern),
		slog.Int("matches", len(words)),
		slog.Int("total", payload.Results.Total),
	)
	return domain.SearchResult{Pattern: pattern, Words: words}, nil
}

// get performs one authenticated GET and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.cfg.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("wordsapi: create request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.cfg.Host)
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wordsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("wordsapi: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wordsapi: decode json: %w", err)
	}
	return nil
}

// toRecord keeps only results that carry both a part of speech and a definition.
func toRecord(w apiWord) domain.WordRecord {
	rec := domain.WordRecord{
		Word:          w.Word,
		Pronunciation: map[string]string(w.Pronunciation),
	}
	for _, r := range w.Results {
		if r.PartOfSpeech == nil || *r.PartOfSpeech == "" || r.Definition == "" {
			continue
		}
		rec.Entries = append(rec.Entries, domain.Definition{
			PartOfSpeech: *r.PartOfSpeech,
			Text:         r.Definition,
		})
	}
	return rec
}
