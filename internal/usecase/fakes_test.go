package usecase

import (
	"context"
	"sync"
)

// fakeStore is an in-memory DocumentStore with hooks for stalling queries and
// forcing failures.
type fakeStore struct {
	mu       sync.Mutex
	taken    map[string]map[string]bool
	queries  []string
	writes   []fakeWrite
	queryErr error
	writeErr error

	// started receives the field name when a query begins; block, when set,
	// stalls every query until closed.
	started chan string
	block   chan struct{}
}

type fakeWrite struct {
	collection string
	id         string
	fields     map[string]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{taken: make(map[string]map[string]bool)}
}

func (s *fakeStore) take(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken[field] == nil {
		s.taken[field] = make(map[string]bool)
	}
	s.taken[field][value] = true
}

func (s *fakeStore) QueryByField(ctx context.Context, collection, field, value string) (bool, error) {
	if s.started != nil {
		s.started <- field
	}
	if s.block != nil {
		<-s.block
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, field+":"+value)
	if s.queryErr != nil {
		return false, s.queryErr
	}
	return !s.taken[field][value], nil
}

func (s *fakeStore) WriteDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, fakeWrite{collection: collection, id: id, fields: fields})
	return nil
}

func (s *fakeStore) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func (s *fakeStore) allQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

// fakeIdentity records credential creations.
type fakeIdentity struct {
	mu    sync.Mutex
	id    string
	err   error
	calls int
}

func (f *fakeIdentity) CreateCredential(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func (f *fakeIdentity) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// signalRecorder captures Notifier and Navigator signals.
type signalRecorder struct {
	mu      sync.Mutex
	notices []string
	routes  []string
}

func (r *signalRecorder) Notify(text string) {
	r.mu.Lock()
	r.notices = append(r.notices, text)
	r.mu.Unlock()
}

func (r *signalRecorder) Navigate(route string) {
	r.mu.Lock()
	r.routes = append(r.routes, route)
	r.mu.Unlock()
}

func (r *signalRecorder) allNotices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

func (r *signalRecorder) allRoutes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}
