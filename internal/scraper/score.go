// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scraper

import (
	"math"
	"strings"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// trustedDomains earn a credibility bonus. Only the first match counts.
var trustedDomains = []string{
	"edu", "khan", "coursera", "udacity", "edx",
	"mit.edu", "stanford.edu", "youtube.com",
	"docs.python.org", "developer.mozilla.org",
}

// eduKeywords each add to credibility when found in the title or description.
var eduKeywords = []string{"course", "tutorial", "learn", "education", "lecture", "lesson"}

const (
	baseCredibility = 0.2
	domainBonus     = 0.3
	keywordBonus    = 0.1
	maxScore        = 1.0
)

// kindRules map URL substrings to kinds. Rules are checked in order.
var kindRules = []struct {
	kind    types.Kind
	needles []string
}{
	{types.KindVideo, []string{"youtube.com", "youtu.be"}},
	{types.KindCourse, []string{"coursera", "edx", "udacity", "khan"}},
	{types.KindDocumentation, []string{"docs.", "documentation", "guide"}},
	{types.KindPractice, []string{"leetcode", "hackerrank", "quizlet", "practice"}},
}

// Classify assigns a kind from the hit's URL.
func Classify(link string) types.Kind {
	u := strings.ToLower(link)
	for _, rule := range kindRules {
		for _, n := range rule.needles {
			if strings.Contains(u, n) {
				return rule.kind
			}
		}
	}
	return types.KindOther
}

// Credibility scores a hit from its domain and educational vocabulary.
func Credibility(link, title, description string) float64 {
	u := strings.ToLower(link)
	t := strings.ToLower(title)
	d := strings.ToLower(description)

	score := 0.0
	for _, domain := range trustedDomains {
		if strings.Contains(u, domain) {
			score += domainBonus
			break
		}
	}
	for _, kw := range eduKeywords {
		if strings.Contains(t, kw) || strings.Contains(d, kw) {
			score += keywordBonus
		}
	}
	return math.Min(maxScore, score+baseCredibility)
}

// Relevance is the fraction of topic words that appear in the title or
// description, capped at 1. A topic with no words scores 0.
func Relevance(topic, title, description string) float64 {
	words := strings.Fields(strings.ToLower(topic))
	if len(words) == 0 {
		return 0
	}
	t := strings.ToLower(title)
	d := strings.ToLower(description)

	found := 0
	for _, w := range words {
		if strings.Contains(t, w) || strings.Contains(d, w) {
			found++
		}
	}
	return math.Min(maxScore, float64(found)/float64(len(words)))
}
