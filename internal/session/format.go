// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// DetailCount is how many results FormatDetails expands.
const DetailCount = 5

// FormatTable writes the header line and one row per result to w.
func FormatTable(st State, w io.Writer) {
	if st.Error != "" {
		fmt.Fprintf(w, "error: %s\n", st.Error)
	}
	if len(st.Results) == 0 {
		fmt.Fprintln(w, "No resources found.")
		return
	}

	fmt.Fprintln(w, st.Header())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s  %-13s  %-60s  %-6s  %-11s  %s\n",
		"Rank", "Type", "Title", "Score", "Rating", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, c := range st.Cards() {
		fmt.Fprintf(w, "%-4d  %-13s  %-60s  %-6.2f  %-11s  %s\n",
			i+1, c.ResourceType, truncate(c.Title, 60), c.CombinedScore(), Stars(c.Rating), truncate(c.URL, 70))
	}
}

// FormatDetails writes an expanded block for each of the first DetailCount results.
func FormatDetails(st State, w io.Writer) {
	for i, c := range st.Cards() {
		if i >= DetailCount {
			break
		}
		fmt.Fprintf(w, "\n#%d %s\n", i+1, c.Title)
		fmt.Fprintf(w, "   Type:        %s\n", c.ResourceType)
		fmt.Fprintf(w, "   Rating:      %s (%.1f/5)\n", Stars(c.Rating), c.Rating)
		fmt.Fprintf(w, "   Credibility: %s\n", c.Credibility)
		fmt.Fprintf(w, "   Relevance:   %s\n", c.Relevance)
		if c.Description != "" {
			fmt.Fprintf(w, "   %s\n", c.Description)
		}
		fmt.Fprintf(w, "   %s\n", c.URL)
	}
}

// FormatCatalog writes one line per resource type.
func FormatCatalog(rt []types.ResourceType, w io.Writer) {
	if len(rt) == 0 {
		fmt.Fprintln(w, "No resource types available.")
		return
	}
	for _, t := range rt {
		fmt.Fprintf(w, "%-15s  %s\n", t.Value, t.Label)
	}
}

// FormatJSON writes the results as indented JSON to w.
func FormatJSON(st State, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(types.SearchResponse{Resources: nonNil(st.Results)})
}

// FormatYAML writes the results as YAML to w.
func FormatYAML(st State, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(types.SearchResponse{Resources: nonNil(st.Results)}); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func nonNil(r []types.Resource) []types.Resource {
	if r == nil {
		return []types.Resource{}
	}
	return r
}

// truncate shortens s to max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
