// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

func newTestClient(ts *httptest.Server) *Client {
	c := New(types.ClientConfig{BaseURL: ts.URL + "/api/", HTTPConfig: types.HTTPConfig{UserAgent: "test/0.1"}})
	c.HTTP = ts.Client()
	return c
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New(types.ClientConfig{})
	assert.Equal(t, types.DefaultAPIBaseURL, c.BaseURL)
	assert.Zero(t, c.HTTP.Timeout)
}

func TestResourceTypes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/resource-types", r.URL.Path)
		assert.Equal(t, "test/0.1", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"resource_types":[{"value":"video","label":"Video"},{"value":"course","label":"Course"}]}`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts).ResourceTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.ResourceType{
		{Value: "video", Label: "Video"},
		{Value: "course", Label: "Course"},
	}, got)
}

func TestResourceTypesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`},
		{"not found", http.StatusNotFound, ``},
		{"malformed body", http.StatusOK, `{"resource_types":`},
		{"empty object", http.StatusOK, `{}`},
		{"null body", http.StatusOK, `null`},
		{"null list", http.StatusOK, `{"resource_types":null}`},
		{"wrong key", http.StatusOK, `{"types":[{"value":"video","label":"Video"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newTestClient(ts).ResourceTypes(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestSearchSendsNullFilterWhenNoneSelected(t *testing.T) {
	var raw map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"resources":[]}`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts).Search(context.Background(), types.SearchRequest{Topic: "algebra"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.JSONEq(t, `"algebra"`, string(raw["topic"]))
	assert.JSONEq(t, `null`, string(raw["resource_types"]))
}

func TestSearchDecodesResources(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"video"}, req.ResourceTypes)
		w.Write([]byte(`{"resources":[{"title":"Algebra 1","description":"Intro","url":"https://youtube.com/x","resource_type":"video","credibility_score":0.8,"relevance_score":0.6}]}`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts).Search(context.Background(), types.SearchRequest{Topic: "algebra", ResourceTypes: []string{"video"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Algebra 1", got[0].Title)
	assert.InDelta(t, 0.7, got[0].CombinedScore(), 1e-9)
}

func TestSearchStatusErrorCarriesDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"API key not configured"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Search(context.Background(), types.SearchRequest{Topic: "x"})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "API key not configured", se.Detail)
}

func TestSearchRejectsMissingResources(t *testing.T) {
	for _, body := range []string{`{}`, `null`, `{"resourcez":[1]}`, `{"resources":null}`} {
		t.Run(body, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(body))
			}))
			defer ts.Close()

			got, err := newTestClient(ts).Search(context.Background(), types.SearchRequest{Topic: "algebra"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing resources")
			assert.Nil(t, got)
		})
	}
}
