// Package siteshield is a minimal client for the Site Shield map API.
package siteshield

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

const apiPath = "/siteshield/v1/maps"

// Client implements interfaces.MapsAPI over an authenticated HTTP client.
type Client struct {
	baseURL    string
	accountKey string
	httpClient *http.Client
}

// NewClient creates a Site Shield client.
// accountKey, when set, is sent as accountSwitchKey on every request.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL, accountKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountKey: accountKey,
		httpClient: httpClient,
	}
}

// FetchMaps retrieves every map visible to the caller.
func (c *Client) FetchMaps(ctx context.Context) (*interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, apiPath)
}

// AcknowledgeMap accepts the proposed CIDRs of the map with the given ID.
func (c *Client) AcknowledgeMap(ctx context.Context, id interfaces.MapID) (*interfaces.Response, error) {
	path := fmt.Sprintf("%s/%s/acknowledge", apiPath, url.PathEscape(id.String()))
	return c.do(ctx, http.MethodPost, path)
}

func (c *Client) do(ctx context.Context, method, path string) (*interfaces.Response, error) {
	endpoint := c.baseURL + path
	if c.accountKey != "" {
		endpoint += "?" + url.Values{"accountSwitchKey": {c.accountKey}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("siteshield: creating %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siteshield: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("siteshield: reading %s response: %w", path, err)
	}

	return &interfaces.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

var _ interfaces.MapsAPI = (*Client)(nil)
