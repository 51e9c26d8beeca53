// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the resource-type filters offered by the resource API.
// A Loader fetches the catalog once; every later Load returns that first
// outcome without touching the network.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// Message is the user-facing text for any catalog failure.
const Message = "Failed to load resource types"

// Fetcher retrieves the resource-type catalog.
type Fetcher interface {
	ResourceTypes(ctx context.Context) ([]types.ResourceType, error)
}

// LoadError reports that the catalog could not be fetched. Err keeps the
// underlying cause for logs; Error returns only the generic message.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return Message }

// Unwrap returns the transport or decode error behind the failure.
func (e *LoadError) Unwrap() error { return e.Err }

// Loader performs the single catalog fetch.
type Loader struct {
	fetcher Fetcher

	once  sync.Once
	types []types.ResourceType
	err   error
}

// NewLoader returns a Loader backed by f.
func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Load fetches the catalog on the first call and returns the cached outcome
// afterwards. On failure the returned slice is empty and the error is a
// *LoadError.
func (l *Loader) Load(ctx context.Context) ([]types.ResourceType, error) {
	l.once.Do(func() {
		rt, err := l.fetcher.ResourceTypes(ctx)
		if err != nil {
			l.err = &LoadError{Err: fmt.Errorf("fetching resource types: %w", err)}
			return
		}
		l.types = dedupe(rt)
	})
	if l.err != nil {
		return nil, l.err
	}
	out := make([]types.ResourceType, len(l.types))
	copy(out, l.types)
	return out, nil
}

// dedupe drops entries whose value repeats an earlier one so each value maps
// to exactly one toggle.
func dedupe(in []types.ResourceType) []types.ResourceType {
	seen := make(map[string]bool, len(in))
	out := make([]types.ResourceType, 0, len(in))
	for _, rt := range in {
		if seen[rt.Value] {
			continue
		}
		seen[rt.Value] = true
		out = append(out, rt)
	}
	return out
}
