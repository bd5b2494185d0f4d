package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw outcome of one API call: the HTTP status and the
// undecoded body.
type Response struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// OK reports whether the call returned 200.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// Maps decodes the body as a map collection.
func (r *Response) Maps() (*MapsResponse, error) {
	var out MapsResponse
	if len(r.Body) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return nil, fmt.Errorf("decoding map collection: %w", err)
	}
	return &out, nil
}

// MapsAPI abstracts the two remote Site Shield operations the CLI uses.
type MapsAPI interface {
	// FetchMaps retrieves every map visible to the caller.
	FetchMaps(ctx context.Context) (*Response, error)

	// AcknowledgeMap accepts the proposed CIDR set of one map.
	AcknowledgeMap(ctx context.Context, id MapID) (*Response, error)
}
