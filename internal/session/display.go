// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// MaxStars is the top of the rating scale.
const MaxStars = 5

// Card holds the display values derived from one resource.
type Card struct {
	types.Resource

	// Rating is the combined score on a 0-5 scale, unrounded.
	Rating float64

	// Credibility and Relevance are the component scores as whole percentages.
	Credibility string
	Relevance   string
}

// NewCard derives the display values for r.
func NewCard(r types.Resource) Card {
	return Card{
		Resource:    r,
		Rating:      Rating(r),
		Credibility: Percent(r.CredibilityScore),
		Relevance:   Percent(r.RelevanceScore),
	}
}

// Cards derives display values for every result in order.
func (s State) Cards() []Card {
	cards := make([]Card, len(s.Results))
	for i, r := range s.Results {
		cards[i] = NewCard(r)
	}
	return cards
}

// Rating maps the combined score of r onto 0-5.
func Rating(r types.Resource) float64 {
	return r.CombinedScore() * MaxStars
}

// HalfStars rounds a rating to the nearest half star, clamped to [0, MaxStars].
func HalfStars(rating float64) float64 {
	v := math.Round(rating*2) / 2
	return math.Max(0, math.Min(MaxStars, v))
}

// Stars renders a rating as five glyphs at half-star precision, e.g. "★★★½☆".
func Stars(rating float64) string {
	v := HalfStars(rating)
	full := int(v)
	half := v-float64(full) >= 0.5

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	empty := MaxStars - full
	if half {
		b.WriteString("½")
		empty--
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

// Percent formats a 0-1 score as a whole percentage, e.g. 0.8 → "80%".
// Halves round away from zero.
func Percent(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

func resultHeader(n int, topic string) string {
	return fmt.Sprintf("Found %d resources for \"%s\"", n, topic)
}
