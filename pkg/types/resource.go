// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the resource API, its
// client, and the command-line front-ends.
package types

import "strings"

// ResourceType is a filterable category offered by the resource-types endpoint.
type ResourceType struct {
	// Value is the identifier sent back in search requests (e.g. "video").
	Value string `json:"value" yaml:"value"`

	// Label is the display name shown next to the filter toggle.
	Label string `json:"label" yaml:"label"`
}

// Resource is one educational item returned by a search.
type Resource struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`

	// ResourceType is one of the ResourceType values.
	ResourceType string `json:"resource_type" yaml:"resource_type"`

	// CredibilityScore is a value between 0.0 and 1.0 derived from the
	// source domain and educational keywords.
	CredibilityScore float64 `json:"credibility_score" yaml:"credibility_score"`

	// RelevanceScore is a value between 0.0 and 1.0 indicating how many of
	// the topic words the result mentions.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// CombinedScore is the mean of the credibility and relevance scores.
func (r Resource) CombinedScore() float64 {
	return (r.CredibilityScore + r.RelevanceScore) / 2
}

// SearchRequest is the body of POST /search. A nil ResourceTypes means no
// filter; it is encoded as JSON null.
type SearchRequest struct {
	Topic         string   `json:"topic" yaml:"topic"`
	ResourceTypes []string `json:"resource_types" yaml:"resource_types"`
}

// SearchResponse is the body returned by POST /search.
type SearchResponse struct {
	Resources []Resource `json:"resources" yaml:"resources"`
}

// ResourceTypesResponse is the body returned by GET /resource-types.
type ResourceTypesResponse struct {
	ResourceTypes []ResourceType `json:"resource_types" yaml:"resource_types"`
}

// Kind enumerates the resource types the scraper can assign.
type Kind string

const (
	KindVideo         Kind = "video"
	KindCourse        Kind = "course"
	KindDocumentation Kind = "documentation"
	KindPractice      Kind = "practice"
	KindOther         Kind = "other"
)

// AllKinds lists every Kind in catalog order.
var AllKinds = []Kind{KindVideo, KindCourse, KindDocumentation, KindPractice, KindOther}

// ParseKind returns the Kind for s and whether s names a known kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Label returns the kind title-cased for display (e.g. "Documentation").
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ResourceType returns the catalog entry for k.
func (k Kind) ResourceType() ResourceType {
	return ResourceType{Value: string(k), Label: k.Label()}
}
