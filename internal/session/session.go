// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the state of one interactive resource search: the
// topic being typed, the selected resource-type filters, the last result set,
// a loading flag, and a user-facing error line. It has no rendering code;
// the CLI and TUI front-ends read a State snapshot and draw it themselves.
//
// A submit moves the session Idle → Loading → Success or Failure. Success and
// Failure accept input exactly like Idle, so the form can be resubmitted at
// once. Overlapping submits are allowed; each carries a generation number and
// only the newest one may change the session when it completes.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// SearchFailedMessage is shown for any failed search.
const SearchFailedMessage = "Failed to fetch resources. Please try again."

// ErrEmptyTopic is returned by Submit when the topic is blank. No request is sent.
var ErrEmptyTopic = errors.New("topic is empty")

// ErrSuperseded is returned by Submit when a newer submit started before this
// one completed. Its response was discarded.
var ErrSuperseded = errors.New("search superseded by a newer request")

// SearchError reports a failed search. Error returns the generic message;
// Err keeps the cause.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string { return SearchFailedMessage }

// Unwrap returns the transport, status, or decode error behind the failure.
func (e *SearchError) Unwrap() error { return e.Err }

// Searcher sends one search request.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) ([]types.Resource, error)
}

// Phase is the position of the session in its submit lifecycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// State is a copy of the session at one instant.
type State struct {
	Topic    string
	Catalog  []types.ResourceType
	Selected []string
	Results  []types.Resource

	// SubmittedTopic is the trimmed topic that produced Results.
	SubmittedTopic string

	Loading bool
	Error   string
	Phase   Phase
}

// IsSelected reports whether value is among the selected filters.
func (s State) IsSelected(value string) bool {
	for _, v := range s.Selected {
		if v == value {
			return true
		}
	}
	return false
}

// CanSubmit reports whether the submit control should be enabled.
func (s State) CanSubmit() bool {
	return !s.Loading && strings.TrimSpace(s.Topic) != ""
}

// Header is the line shown above the results, or "" when there are none.
func (s State) Header() string {
	if len(s.Results) == 0 {
		return ""
	}
	return resultHeader(len(s.Results), s.SubmittedTopic)
}

// Session is safe for concurrent use.
type Session struct {
	searcher Searcher

	mu    sync.Mutex
	state State
	gen   uint64
}

// New returns an idle session that searches through s.
func New(s Searcher) *Session {
	return &Session{searcher: s}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Catalog = append([]types.ResourceType(nil), s.state.Catalog...)
	st.Selected = append([]string(nil), s.state.Selected...)
	st.Results = append([]types.Resource(nil), s.state.Results...)
	return st
}

// SetTopic replaces the topic text.
func (s *Session) SetTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Topic = topic
}

// Toggle adds value to the selected filters, or removes it if already
// selected, and reports whether it is selected afterwards. Selection order
// is kept so requests list filters in the order they were picked.
func (s *Session) Toggle(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.state.Selected {
		if v == value {
			s.state.Selected = append(s.state.Selected[:i:i], s.state.Selected[i+1:]...)
			return false
		}
	}
	s.state.Selected = append(s.state.Selected, value)
	return true
}

// Selected returns the selected filter values in selection order.
func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.state.Selected...)
}

// ApplyCatalog replaces the offered filters. On err the catalog is emptied
// and the catalog failure message is shown. Selected filters that are no
// longer offered are dropped.
func (s *Session) ApplyCatalog(rt []types.ResourceType, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state.Catalog = nil
		s.state.Error = catalog.Message
	} else {
		s.state.Catalog = append([]types.ResourceType(nil), rt...)
	}

	offered := make(map[string]bool, len(s.state.Catalog))
	for _, t := range s.state.Catalog {
		offered[t.Value] = true
	}
	kept := s.state.Selected[:0]
	for _, v := range s.state.Selected {
		if offered[v] {
			kept = append(kept, v)
		}
	}
	s.state.Selected = kept
}

// LoadCatalog runs l and applies its outcome.
func (s *Session) LoadCatalog(ctx context.Context, l *catalog.Loader) error {
	rt, err := l.Load(ctx)
	s.ApplyCatalog(rt, err)
	return err
}

// Request builds the request a submit would send now. ok is false when the
// topic is blank.
func (s *Session) Request() (req types.SearchRequest, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestLocked()
}

func (s *Session) requestLocked() (types.SearchRequest, bool) {
	topic := strings.TrimSpace(s.state.Topic)
	if topic == "" {
		return types.SearchRequest{}, false
	}
	req := types.SearchRequest{Topic: topic}
	if len(s.state.Selected) > 0 {
		req.ResourceTypes = append([]string(nil), s.state.Selected...)
	}
	return req, true
}

// Submit sends a search for the current topic and filters and blocks until
// it completes. A blank topic returns ErrEmptyTopic without touching the
// session. A failed search returns a *SearchError and leaves earlier results
// in place. If a newer submit started in the meantime, the response is
// dropped and ErrSuperseded is returned.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	req, ok := s.requestLocked()
	if !ok {
		s.mu.Unlock()
		return ErrEmptyTopic
	}
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Error = ""
	s.state.Phase = Loading
	s.mu.Unlock()

	defer s.clearLoading(gen)

	results, err := s.searcher.Search(ctx, req)
	return s.complete(gen, req.Topic, results, err)
}

func (s *Session) complete(gen uint64, topic string, results []types.Resource, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return ErrSuperseded
	}
	if err != nil {
		s.state.Error = SearchFailedMessage
		s.state.Phase = Failure
		return &SearchError{Err: err}
	}
	if results == nil {
		results = []types.Resource{}
	}
	s.state.Results = results
	s.state.SubmittedTopic = topic
	s.state.Error = ""
	s.state.Phase = Success
	return nil
}

// clearLoading runs after every submit, including one whose searcher panicked.
func (s *Session) clearLoading(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.state.Loading = false
	if s.state.Phase == Loading {
		s.state.Phase = Idle
	}
}
