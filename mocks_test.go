package desk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	desk "github.com/goliatone/go-desk"
	"github.com/stretchr/testify/mock"
)

// MockCredentialStore implements desk.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCredentialStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockActivitySink implements desk.ActivitySink
type MockActivitySink struct {
	mock.Mock
}

func (m *MockActivitySink) Record(ctx context.Context, event desk.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// countingStore wraps a MemoryStore and counts deletions
type countingStore struct {
	*desk.MemoryStore
	mu      sync.Mutex
	deletes int
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: desk.NewMemoryStore()}
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.deletes++
	s.mu.Unlock()
	return s.MemoryStore.Delete(ctx, key)
}

func (s *countingStore) Deletes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletes
}

// recorder captures what the controllers show to the user
type recorder struct {
	mu      sync.Mutex
	notices []string
	routes  []string
	states  []desk.ListState
	resets  int
}

func (r *recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
}

func (r *recorder) Navigate(destination string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, destination)
}

func (r *recorder) Render(state desk.ListState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}

func (r *recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

func (r *recorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

func (r *recorder) States() []desk.ListState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]desk.ListState(nil), r.states...)
}

func (r *recorder) LastState() desk.ListState {
	states := r.States()
	if len(states) == 0 {
		return desk.ListState{}
	}
	return states[len(states)-1]
}

// backend is a fake desk server that counts requests per path
type backend struct {
	mu       sync.Mutex
	hits     map[string]int
	requests []*http.Request
	bodies   []map[string]any
	handler  func(w http.ResponseWriter, r *http.Request)
}

func newBackend(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*backend, *httptest.Server) {
	t.Helper()

	b := &backend{hits: map[string]int{}, handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}

		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.requests = append(b.requests, r)
		b.bodies = append(b.bodies, body)
		b.mu.Unlock()

		b.handler(w, r)
	}))
	t.Cleanup(server.Close)

	return b, server
}

func (b *backend) Hits(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *backend) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *backend) LastBody() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.bodies) == 0 {
		return nil
	}
	return b.bodies[len(b.bodies)-1]
}

func (b *backend) LastRequest() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return nil
	}
	return b.requests[len(b.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func testOptions(baseURL string) *desk.Options {
	opts := desk.DefaultOptions()
	opts.BaseURL = baseURL
	return opts
}

type quietLogger struct{}

func (quietLogger) Debug(string, ...any) {}
func (quietLogger) Info(string, ...any)  {}
func (quietLogger) Warn(string, ...any)  {}
func (quietLogger) Error(string, ...any) {}

func int64Ptr(v int64) *int64 {
	return &v
}
