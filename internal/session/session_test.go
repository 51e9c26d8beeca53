// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// --- fakes ---

type fakeSearcher struct {
	mu       sync.Mutex
	requests []types.SearchRequest
	results  []types.Resource
	err      error
}

func (f *fakeSearcher) Search(_ context.Context, req types.SearchRequest) ([]types.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.results, f.err
}

func (f *fakeSearcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type catalogFetcher struct {
	types []types.ResourceType
	err   error
}

func (c catalogFetcher) ResourceTypes(context.Context) ([]types.ResourceType, error) {
	return c.types, c.err
}

func sampleResources(n int) []types.Resource {
	out := make([]types.Resource, n)
	for i := range out {
		out[i] = types.Resource{Title: "r", URL: "https://example.com", ResourceType: "other", CredibilityScore: 0.5, RelevanceScore: 0.5}
	}
	return out
}

// --- submit guard ---

func TestSubmitBlankTopicIsNoop(t *testing.T) {
	for _, topic := range []string{"", "   ", "\t\n"} {
		f := &fakeSearcher{}
		s := New(f)
		s.SetTopic(topic)
		before := s.Snapshot()

		err := s.Submit(context.Background())
		assert.ErrorIs(t, err, ErrEmptyTopic)
		assert.Zero(t, f.calls())

		after := s.Snapshot()
		assert.Equal(t, before.Loading, after.Loading)
		assert.Equal(t, Idle, after.Phase)
		assert.False(t, after.CanSubmit())
	}
}

func TestSubmitTrimsTopicAndSendsNullFilter(t *testing.T) {
	for _, topic := range []string{"algebra", "  linear algebra  ", "\tcalculus\n"} {
		f := &fakeSearcher{}
		s := New(f)
		s.SetTopic(topic)

		require.NoError(t, s.Submit(context.Background()))
		require.Len(t, f.requests, 1)
		assert.Equal(t, types.SearchRequest{Topic: strings.TrimSpace(topic)}, f.requests[0])
		assert.Nil(t, f.requests[0].ResourceTypes)
	}
}

// --- filters ---

func TestToggleTwiceRestoresSelection(t *testing.T) {
	s := New(&fakeSearcher{})
	s.Toggle("course")
	before := s.Selected()

	assert.True(t, s.Toggle("video"))
	assert.False(t, s.Toggle("video"))
	assert.Equal(t, before, s.Selected())

	assert.False(t, s.Toggle("course"))
	assert.True(t, s.Toggle("course"))
	assert.Equal(t, before, s.Selected())
}

func TestCatalogScenario(t *testing.T) {
	f := &fakeSearcher{}
	s := New(f)
	l := catalog.NewLoader(catalogFetcher{types: []types.ResourceType{{Value: "video", Label: "Video"}}})

	require.NoError(t, s.LoadCatalog(context.Background(), l))
	st := s.Snapshot()
	require.Len(t, st.Catalog, 1)
	assert.Equal(t, "Video", st.Catalog[0].Label)

	s.Toggle("video")
	s.SetTopic("algebra")
	require.NoError(t, s.Submit(context.Background()))

	require.Len(t, f.requests, 1)
	assert.Equal(t, types.SearchRequest{Topic: "algebra", ResourceTypes: []string{"video"}}, f.requests[0])
}

func TestCatalogFailureLeavesFormUsable(t *testing.T) {
	f := &fakeSearcher{results: sampleResources(1)}
	s := New(f)
	l := catalog.NewLoader(catalogFetcher{err: errors.New("dial tcp: refused")})

	err := s.LoadCatalog(context.Background(), l)
	require.Error(t, err)

	st := s.Snapshot()
	assert.Empty(t, st.Catalog)
	assert.Equal(t, catalog.Message, st.Error)

	s.SetTopic("physics")
	require.NoError(t, s.Submit(context.Background()))
	st = s.Snapshot()
	assert.Empty(t, st.Error)
	assert.Len(t, st.Results, 1)
}

func TestApplyCatalogDropsStaleSelections(t *testing.T) {
	s := New(&fakeSearcher{})
	s.ApplyCatalog([]types.ResourceType{{Value: "video"}, {Value: "course"}}, nil)
	s.Toggle("video")
	s.Toggle("course")

	s.ApplyCatalog([]types.ResourceType{{Value: "course"}}, nil)
	assert.Equal(t, []string{"course"}, s.Selected())
}

// --- outcomes ---

func TestSuccessReplacesResults(t *testing.T) {
	f := &fakeSearcher{results: sampleResources(3)}
	s := New(f)
	s.SetTopic("chemistry")
	require.NoError(t, s.Submit(context.Background()))

	st := s.Snapshot()
	assert.Len(t, st.Results, 3)
	assert.Equal(t, `Found 3 resources for "chemistry"`, st.Header())
	assert.Equal(t, Success, st.Phase)
	assert.False(t, st.Loading)

	f.results = sampleResources(1)
	s.SetTopic("biology")
	require.NoError(t, s.Submit(context.Background()))

	st = s.Snapshot()
	assert.Len(t, st.Results, 1)
	assert.Equal(t, `Found 1 resources for "biology"`, st.Header())
}

func TestEmptySuccessHasNoHeader(t *testing.T) {
	s := New(&fakeSearcher{})
	s.SetTopic("obscure")
	require.NoError(t, s.Submit(context.Background()))

	st := s.Snapshot()
	assert.NotNil(t, st.Results)
	assert.Empty(t, st.Results)
	assert.Empty(t, st.Header())
}

func TestFailureShowsErrorAndKeepsPriorResults(t *testing.T) {
	f := &fakeSearcher{results: sampleResources(2)}
	s := New(f)
	s.SetTopic("history")
	require.NoError(t, s.Submit(context.Background()))

	cause := errors.New("HTTP 500")
	f.err = cause
	err := s.Submit(context.Background())

	var se *SearchError
	require.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, SearchFailedMessage, err.Error())

	st := s.Snapshot()
	assert.Equal(t, SearchFailedMessage, st.Error)
	assert.False(t, st.Loading)
	assert.Equal(t, Failure, st.Phase)
	assert.Len(t, st.Results, 2)
	assert.True(t, st.CanSubmit())
}

func TestSubmitClearsPriorError(t *testing.T) {
	f := &fakeSearcher{err: errors.New("boom")}
	s := New(f)
	s.SetTopic("art")
	require.Error(t, s.Submit(context.Background()))

	f.err = nil
	require.NoError(t, s.Submit(context.Background()))
	assert.Empty(t, s.Snapshot().Error)
}

func TestLoadingClearedWhenSearcherPanics(t *testing.T) {
	s := New(panicSearcher{})
	s.SetTopic("x")

	assert.Panics(t, func() { _ = s.Submit(context.Background()) })
	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Equal(t, Idle, st.Phase)
}

type panicSearcher struct{}

func (panicSearcher) Search(context.Context, types.SearchRequest) ([]types.Resource, error) {
	panic("searcher exploded")
}

// --- overlapping submits ---

// gatedSearcher blocks each call until its gate channel is closed.
type gatedSearcher struct {
	started chan string
	gates   map[string]chan struct{}
	results map[string][]types.Resource
}

func (g *gatedSearcher) Search(_ context.Context, req types.SearchRequest) ([]types.Resource, error) {
	g.started <- req.Topic
	<-g.gates[req.Topic]
	return g.results[req.Topic], nil
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	g := &gatedSearcher{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"old": make(chan struct{}), "new": make(chan struct{})},
		results: map[string][]types.Resource{"old": sampleResources(4), "new": sampleResources(2)},
	}
	s := New(g)

	oldDone := make(chan error, 1)
	s.SetTopic("old")
	go func() { oldDone <- s.Submit(context.Background()) }()
	require.Equal(t, "old", <-g.started)

	newDone := make(chan error, 1)
	s.SetTopic("new")
	go func() { newDone <- s.Submit(context.Background()) }()
	require.Equal(t, "new", <-g.started)

	close(g.gates["new"])
	require.NoError(t, <-newDone)

	close(g.gates["old"])
	assert.ErrorIs(t, <-oldDone, ErrSuperseded)

	st := s.Snapshot()
	assert.Len(t, st.Results, 2)
	assert.Equal(t, "new", st.SubmittedTopic)
	assert.False(t, st.Loading)
}

func TestOlderCompletionDoesNotClearNewerLoading(t *testing.T) {
	g := &gatedSearcher{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"a": make(chan struct{}), "b": make(chan struct{})},
		results: map[string][]types.Resource{"a": sampleResources(1), "b": sampleResources(1)},
	}
	s := New(g)

	aDone := make(chan error, 1)
	s.SetTopic("a")
	go func() { aDone <- s.Submit(context.Background()) }()
	<-g.started

	bDone := make(chan error, 1)
	s.SetTopic("b")
	go func() { bDone <- s.Submit(context.Background()) }()
	<-g.started

	close(g.gates["a"])
	assert.ErrorIs(t, <-aDone, ErrSuperseded)
	assert.True(t, s.Snapshot().Loading)

	close(g.gates["b"])
	require.NoError(t, <-bDone)
	assert.False(t, s.Snapshot().Loading)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(&fakeSearcher{results: sampleResources(1)})
	s.Toggle("video")
	s.SetTopic("go")
	require.NoError(t, s.Submit(context.Background()))

	st := s.Snapshot()
	st.Selected[0] = "mutated"
	st.Results[0].Title = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "video", again.Selected[0])
	assert.Equal(t, "r", again.Results[0].Title)
}
