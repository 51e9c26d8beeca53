// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/httputil"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// serperSearchBase is the Serper Google search endpoint. Declared as a var so
// tests can substitute an httptest server.
var serperSearchBase = "https://google.serper.dev/search"

const defaultNumResults = 20

// ErrNoAPIKey is returned when the Serper backend has no key configured.
var ErrNoAPIKey = fmt.Errorf("serper API key not configured")

// SerperBackend queries the Serper web search API.
type SerperBackend struct {
	Client     *http.Client
	APIKey     string
	Endpoint   string
	NumResults int
	MaxRetries int
	UserAgent  string

	// Log receives rate-limit notices. Nil discards them.
	Log io.Writer
}

// NewSerperBackend builds a backend from cfg.
func NewSerperBackend(cfg types.ScraperConfig, log io.Writer) *SerperBackend {
	return &SerperBackend{
		Client:     &http.Client{Timeout: cfg.Timeout},
		APIKey:     cfg.APIKey,
		Endpoint:   cfg.Endpoint,
		NumResults: cfg.NumResults,
		MaxRetries: cfg.MaxRetries,
		UserAgent:  cfg.UserAgent,
		Log:        log,
	}
}

// Name returns the backend identifier.
func (b *SerperBackend) Name() string { return "serper" }

// Search posts query to Serper and returns the organic results.
func (b *SerperBackend) Search(ctx context.Context, query string) ([]Hit, error) {
	if b.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	num := b.NumResults
	if num <= 0 {
		num = defaultNumResults
	}
	payload, err := json.Marshal(serperRequest{Q: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = serperSearchBase
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-KEY", b.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.MaxRetries, b.Log)
	if err != nil {
		return nil, fmt.Errorf("Serper API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Serper API returned HTTP %d", resp.StatusCode)
	}

	var sr serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Serper response: %w", err)
	}

	hits := make([]Hit, 0, len(sr.Organic))
	for _, o := range sr.Organic {
		hits = append(hits, Hit{Title: o.Title, Link: o.Link, Snippet: o.Snippet})
	}
	return hits, nil
}

// Serper API JSON structures.
type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}
