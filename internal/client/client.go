// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package client talks to the resource API: one call to list the available
// resource types and one call to search. Requests are sent once; there is no
// retry and no timeout unless the configuration sets one.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// API is the subset of the resource API the catalog loader and search
// session depend on.
type API interface {
	ResourceTypes(ctx context.Context) ([]types.ResourceType, error)
	Search(ctx context.Context, req types.SearchRequest) ([]types.Resource, error)
}

// Client is an HTTP implementation of API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// New returns a Client for cfg. An empty base URL falls back to
// types.DefaultAPIBaseURL.
func New(cfg types.ClientConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = types.DefaultAPIBaseURL
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   base,
		UserAgent: cfg.UserAgent,
	}
}

// ResourceTypes fetches GET {base}/resource-types.
func (c *Client) ResourceTypes(ctx context.Context) ([]types.ResourceType, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/resource-types", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var body struct {
		ResourceTypes *[]types.ResourceType `json:"resource_types"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, fmt.Errorf("resource types: %w", err)
	}
	if body.ResourceTypes == nil {
		return nil, fmt.Errorf("resource types: parsing response: missing resource_types")
	}
	return *body.ResourceTypes, nil
}

// Search posts req to {base}/search and returns the resources in response order.
func (c *Client) Search(ctx context.Context, sr types.SearchRequest) ([]types.Resource, error) {
	payload, err := json.Marshal(sr)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body struct {
		Resources *[]types.Resource `json:"resources"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if body.Resources == nil {
		return nil, fmt.Errorf("search: parsing response: missing resources")
	}
	return *body.Resources, nil
}

// do sends req and decodes a 2xx JSON body into out. Any other status is an
// error carrying the server's detail message when one is present. A JSON null
// body leaves out untouched, so callers check that required fields are set.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API returned HTTP %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("API returned HTTP %d", e.Code)
}

// readDetail pulls the "detail" field out of an error body, if any.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	return body.Detail
}
