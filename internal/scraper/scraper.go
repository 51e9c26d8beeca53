// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scraper finds educational resources for a topic through a web
// search backend, classifies each hit into a resource kind, and scores it for
// credibility and relevance.
package scraper

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// querySuffix steers general web search toward learning material.
const querySuffix = " tutorial education course"

// Hit is one organic web search result.
type Hit struct {
	Title   string
	Link    string
	Snippet string
}

// Backend runs a web search. Each provider implements this interface.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) ([]Hit, error)
}

// Scraper turns web search hits into scored resources. It is safe for
// concurrent use.
type Scraper struct {
	backend Backend
	policy  *bluemonday.Policy
	warn    io.Writer
}

// New returns a Scraper over b. Warnings about skipped hits go to w.
func New(b Backend, w io.Writer) *Scraper {
	if w == nil {
		w = io.Discard
	}
	return &Scraper{
		backend: b,
		policy:  bluemonday.StrictPolicy(),
		warn:    w,
	}
}

// Search queries the backend for topic and returns every usable hit as a
// Resource, ranked by combined score (highest first). Ties keep backend order.
func (s *Scraper) Search(ctx context.Context, topic string) ([]types.Resource, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic is empty")
	}

	hits, err := s.backend.Search(ctx, topic+querySuffix)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", s.backend.Name(), err)
	}

	resources := make([]types.Resource, 0, len(hits))
	for _, h := range hits {
		if h.Link == "" {
			fmt.Fprintf(s.warn, "warning: %s hit %q has no link, skipped\n", s.backend.Name(), h.Title)
			continue
		}
		title := s.plain(h.Title)
		desc := s.plain(h.Snippet)

		resources = append(resources, types.Resource{
			Title:            title,
			Description:      desc,
			URL:              h.Link,
			ResourceType:     string(Classify(h.Link)),
			CredibilityScore: Credibility(h.Link, title, desc),
			RelevanceScore:   Relevance(topic, title, desc),
		})
	}

	Rank(resources)
	return resources, nil
}

// plain strips markup from search snippets and decodes entities.
func (s *Scraper) plain(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// Rank sorts resources by combined score, highest first, keeping the order
// of equal scores.
func Rank(resources []types.Resource) {
	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].CombinedScore() > resources[j].CombinedScore()
	})
}

// Filter returns the resources whose type is in kinds. An empty kinds
// returns resources unchanged.
func Filter(resources []types.Resource, kinds []types.Kind) []types.Resource {
	if len(kinds) == 0 {
		return resources
	}
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[string(k)] = true
	}
	out := make([]types.Resource, 0, len(resources))
	for _, r := range resources {
		if want[r.ResourceType] {
			out = append(out, r)
		}
	}
	return out
}

// Catalog returns every kind as a resource type with its display label.
func Catalog() []types.ResourceType {
	out := make([]types.ResourceType, len(types.AllKinds))
	for i, k := range types.AllKinds {
		out[i] = k.ResourceType()
	}
	return out
}
