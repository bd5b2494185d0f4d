package signing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akamai/AkamaiOPEN-edgegrid-golang/v9/pkg/edgegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSigner struct {
	signed int
}

func (s *countingSigner) SignRequest(r *http.Request) {
	s.signed++
	r.Header.Set("Authorization", "test-signature")
}

func newRecorder(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &auths
}

func TestTransport_SignsEveryRequest(t *testing.T) {
	server, auths := newRecorder(t)
	signer := &countingSigner{}
	client := &http.Client{Transport: &Transport{Signer: signer}}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.URL + "/siteshield/v1/maps")
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2, signer.signed)
	assert.Equal(t, []string{"test-signature", "test-signature"}, *auths)
}

func TestTransport_LeavesOriginalRequestUnsigned(t *testing.T) {
	server, _ := newRecorder(t)
	client := &http.Client{Transport: &Transport{Signer: &countingSigner{}}}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/siteshield/v1/maps/1/acknowledge", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNewClient_EdgeGridHeader(t *testing.T) {
	server, auths := newRecorder(t)
	client := NewClient(&edgegrid.Config{
		Host:         strings.TrimPrefix(server.URL, "http://"),
		ClientToken:  "ct",
		ClientSecret: "cs",
		AccessToken:  "at",
		MaxBody:      131072,
	})

	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.URL + "/siteshield/v1/maps?accountSwitchKey=K-1")
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, *auths, 2)
	for _, a := range *auths {
		assert.True(t, strings.HasPrefix(a, "EG1-HMAC-SHA256 client_token=ct;access_token=at;timestamp="), "unexpected header %q", a)
		assert.Contains(t, a, ";nonce=")
		assert.Contains(t, a, ";signature=")
	}
	assert.NotEqual(t, (*auths)[0], (*auths)[1], "each request gets a fresh nonce")
}
