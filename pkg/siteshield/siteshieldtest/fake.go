// Package siteshieldtest provides test doubles for the Site Shield API:
// an in-memory interfaces.MapsAPI and an httptest server speaking the wire format.
package siteshieldtest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// SampleMapsJSON is a single pending map named Foo with ID 1.
const SampleMapsJSON = `{"siteShieldMaps":[{"id":1,"ruleName":"Foo","acknowledged":false,` +
	`"currentCidrs":["1.2.3.0/24"],"proposedCidrs":["1.2.3.0/24","1.2.4.0/24"],` +
	`"acknowledgedBy":"u","acknowledgedOn":0,"contacts":["a@b.com"]}]}`

// Fake implements interfaces.MapsAPI with canned responses and records
// every call for assertion.
type Fake struct {
	mu sync.Mutex

	// FetchResponses are returned by successive FetchMaps calls. The last
	// one repeats once the list is exhausted.
	FetchResponses []*interfaces.Response
	// FetchError is returned by FetchMaps if non-nil.
	FetchError error

	// AckResponse is returned by AcknowledgeMap. Defaults to 200 {}.
	AckResponse *interfaces.Response
	// AckError is returned by AcknowledgeMap if non-nil.
	AckError error

	fetches int
	acked   []interfaces.MapID
}

// NewFake returns a Fake whose fetches return body with status 200.
func NewFake(body string) *Fake {
	return &Fake{FetchResponses: []*interfaces.Response{OK(body)}}
}

// OK builds a 200 response with body.
func OK(body string) *interfaces.Response {
	return &interfaces.Response{StatusCode: http.StatusOK, Body: json.RawMessage(body)}
}

// Status builds a response with the given status and body.
func Status(code int, body string) *interfaces.Response {
	return &interfaces.Response{StatusCode: code, Body: json.RawMessage(body)}
}

func (f *Fake) FetchMaps(ctx context.Context) (*interfaces.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.FetchError != nil {
		return nil, f.FetchError
	}
	if len(f.FetchResponses) == 0 {
		return OK(`{"siteShieldMaps":[]}`), nil
	}
	i := f.fetches - 1
	if i >= len(f.FetchResponses) {
		i = len(f.FetchResponses) - 1
	}
	return f.FetchResponses[i], nil
}

func (f *Fake) AcknowledgeMap(ctx context.Context, id interfaces.MapID) (*interfaces.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, id)
	if f.AckError != nil {
		return nil, f.AckError
	}
	if f.AckResponse == nil {
		return OK(`{}`), nil
	}
	return f.AckResponse, nil
}

// Fetches returns the number of FetchMaps calls.
func (f *Fake) Fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

// Acknowledged returns the IDs passed to AcknowledgeMap, in order.
func (f *Fake) Acknowledged() []interfaces.MapID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]interfaces.MapID(nil), f.acked...)
}

// Calls returns the total number of remote calls made.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches + len(f.acked)
}

var _ interfaces.MapsAPI = (*Fake)(nil)

// MustMaps decodes a map collection or fails the test.
func MustMaps(t *testing.T, body string) []interfaces.Map {
	t.Helper()
	maps, err := OK(body).Maps()
	if err != nil {
		t.Fatalf("decoding maps fixture: %v", err)
	}
	return maps.SiteShieldMaps
}
