// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultAPIBaseURL is the resource API base used when none is configured.
const DefaultAPIBaseURL = "http://localhost:8000/api"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "resource-scraper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for talking to the resource API.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// ScraperConfig holds settings for the web-search backend behind the API.
type ScraperConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the Serper search API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Endpoint overrides the Serper search URL.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// NumResults is the number of organic results requested per search (default 20).
	NumResults int `json:"num_results" yaml:"num_results"`

	// MaxRetries bounds retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the resource API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// MaxResults caps the resources returned per search (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// HistoryDB is the SQLite file searches are recorded in. Empty disables history.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}
