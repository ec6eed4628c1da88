package testsupport

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Route is a canned response served for one request path.
type Route struct {
	Status int
	Body   []byte
}

// APIServer is an httptest server that serves canned routes and records
// every request path it receives.
type APIServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []*http.Request
}

// NewAPIServer starts a server for routes. Unknown paths get a 404 with an
// empty body. The server is closed when the test finishes.
func NewAPIServer(t *testing.T, routes map[string]Route) *APIServer {
	t.Helper()

	s := &APIServer{routes: routes}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

func (s *APIServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	route, ok := s.routes[r.URL.EscapedPath()]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(route.Body)
}

// Hits returns the number of requests received so far.
func (s *APIServer) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Paths returns the escaped request paths in arrival order.
func (s *APIServer) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, len(s.requests))
	for i, r := range s.requests {
		paths[i] = r.URL.EscapedPath()
	}
	return paths
}

// LastRequest returns the most recent request, or nil.
func (s *APIServer) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
