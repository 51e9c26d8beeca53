// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		link string
		want types.Kind
	}{
		{"https://www.youtube.com/watch?v=abc", types.KindVideo},
		{"https://youtu.be/abc", types.KindVideo},
		{"https://www.coursera.org/learn/algebra", types.KindCourse},
		{"https://www.khanacademy.org/math", types.KindCourse},
		{"https://docs.python.org/3/tutorial/", types.KindDocumentation},
		{"https://example.com/user-guide", types.KindDocumentation},
		{"https://leetcode.com/problems/two-sum", types.KindPractice},
		{"https://example.com/practice-sets", types.KindPractice},
		{"https://blog.example.com/post", types.KindOther},
		{"HTTPS://WWW.YOUTUBE.COM/X", types.KindVideo},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.link))
		})
	}
}

func TestCredibility(t *testing.T) {
	tests := []struct {
		name              string
		link, title, desc string
		want              float64
	}{
		{"base only", "https://blog.example.com", "Notes", "Some notes", 0.2},
		{"trusted domain", "https://www.coursera.org/x", "Notes", "", 0.5},
		{"domain counted once", "https://ocw.mit.edu/x", "", "", 0.5},
		{"keywords add up", "https://blog.example.com", "Algebra Tutorial", "a full course lecture", 0.5},
		{"keyword in both fields counts once", "https://blog.example.com", "tutorial", "tutorial", 0.3},
		{"capped at one", "https://www.edx.org", "Learn course tutorial", "education lecture lesson", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Credibility(tt.link, tt.title, tt.desc), 1e-9)
		})
	}
}

func TestRelevance(t *testing.T) {
	tests := []struct {
		name               string
		topic, title, desc string
		want               float64
	}{
		{"all words in title", "Linear Algebra", "Linear algebra for beginners", "", 1.0},
		{"half the words", "linear algebra", "Algebra basics", "", 0.5},
		{"word in description", "calculus", "Math", "An intro to calculus", 1.0},
		{"no match", "chemistry", "Physics", "mechanics", 0.0},
		{"blank topic", "   ", "anything", "", 0.0},
		{"repeated word counted per occurrence", "go go", "go", "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Relevance(tt.topic, tt.title, tt.desc), 1e-9)
		})
	}
}
