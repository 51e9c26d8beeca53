// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/history"
)

func TestFormatHistory(t *testing.T) {
	var buf bytes.Buffer
	formatHistory(nil, &buf)
	assert.Equal(t, "No searches recorded.\n", buf.String())

	buf.Reset()
	formatHistory([]history.Entry{
		{Topic: "algebra", ResourceTypes: []string{"video"}, ResultCount: 3, Elapsed: 1500 * time.Microsecond, CreatedAt: time.Now()},
		{Topic: "graph theory", ResultCount: 0, Error: "upstream failed", CreatedAt: time.Now()},
	}, &buf)
	out := buf.String()
	assert.Contains(t, out, "algebra")
	assert.Contains(t, out, "video")
	assert.Contains(t, out, "(all)")
	assert.Contains(t, out, "upstream failed")
	assert.Contains(t, out, "2ms")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcdefg...", clip("abcdefghijklmnop", 10))
	assert.Equal(t, "Élément...", clip("Éléments de géométrie", 10))
	assert.True(t, utf8.ValidString(clip("线性代数入门教程完整版课程", 8)))
}
