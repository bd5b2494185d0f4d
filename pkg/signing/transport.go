// Package signing attaches EdgeGrid authorization headers to outgoing API
// requests.
package signing

import (
	"net/http"

	"github.com/akamai/AkamaiOPEN-edgegrid-golang/v9/pkg/edgegrid"
)

// RequestSigner sets the Authorization header on a request.
// *edgegrid.Config implements it.
type RequestSigner interface {
	SignRequest(r *http.Request)
}

// Transport is an http.RoundTripper that signs every request before
// handing it to Base.
type Transport struct {
	Signer RequestSigner
	Base   http.RoundTripper
}

// RoundTrip signs a clone of req and sends it. req itself is not modified.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	t.Signer.SignRequest(clone)
	return t.base().RoundTrip(clone)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// NewClient returns an *http.Client whose requests are signed with cfg.
func NewClient(cfg *edgegrid.Config) *http.Client {
	return &http.Client{
		Transport: &Transport{Signer: cfg},
	}
}
