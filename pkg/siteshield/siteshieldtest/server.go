package siteshieldtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Request records one call received by a Server.
type Request struct {
	Method        string
	Path          string
	AccountKey    string
	Authorization string
	Body          string
}

// Server is an httptest server that serves the Site Shield map endpoints.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	// MapsStatus and MapsBody answer GET /siteshield/v1/maps.
	MapsStatus int
	MapsBody   string
	// AckStatus and AckBody answer POST /siteshield/v1/maps/{id}/acknowledge.
	AckStatus int
	AckBody   string

	requests []Request
}

// NewServer starts a Server serving mapsBody with status 200. It is closed
// when the test finishes.
func NewServer(t *testing.T, mapsBody string) *Server {
	t.Helper()
	s := &Server{
		MapsStatus: http.StatusOK,
		MapsBody:   mapsBody,
		AckStatus:  http.StatusOK,
		AckBody:    `{}`,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		AccountKey:    r.URL.Query().Get("accountSwitchKey"),
		Authorization: r.Header.Get("Authorization"),
		Body:          string(body),
	})
	mapsStatus, mapsBody := s.MapsStatus, s.MapsBody
	ackStatus, ackBody := s.AckStatus, s.AckBody
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/siteshield/v1/maps":
		w.WriteHeader(mapsStatus)
		_, _ = w.Write([]byte(mapsBody))
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/siteshield/v1/maps/") &&
		strings.HasSuffix(r.URL.Path, "/acknowledge"):
		w.WriteHeader(ackStatus)
		_, _ = w.Write([]byte(ackBody))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found"}`))
	}
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests used the given method.
func (s *Server) Count(method string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}
