package edgerc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEdgerc = `[default]
host = akab-default.luna.akamaiapis.net
client_token = akab-ct-default
client_secret = c2VjcmV0Kys9PQ==
access_token = akab-at-default

[staging]
host = akab-staging.luna.akamaiapis.net
client_token = akab-ct-staging
client_secret = staging-secret
access_token = akab-at-staging
max_body = 2048

[blank]
host = akab-blank.luna.akamaiapis.net
client_token = akab-ct-blank
client_secret =
access_token = akab-at-blank

[slash]
host = akab-slash.luna.akamaiapis.net/
client_token = akab-ct-slash
client_secret = slash-secret
access_token = akab-at-slash
`

func writeEdgerc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".edgerc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AKAMAI_EDGERC", "")
	t.Setenv("AKAMAI_EDGERC_SECTION", "")
}

func TestLoad_DefaultSection(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, sampleEdgerc)

	creds, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "default", creds.Section)
	assert.Equal(t, "akab-default.luna.akamaiapis.net", creds.Host)
	assert.Equal(t, "https://akab-default.luna.akamaiapis.net", creds.BaseURL())
	assert.Equal(t, "c2VjcmV0Kys9PQ==", creds.ClientSecret)
	assert.Equal(t, DefaultMaxBody, creds.MaxBody)

	require.NotNil(t, creds.Signer)
	assert.Equal(t, "akab-at-default", creds.Signer.AccessToken)
	assert.Equal(t, DefaultMaxBody, creds.Signer.MaxBody)
}

func TestLoad_ExplicitSection(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, sampleEdgerc)

	creds, err := Load(Options{Path: path, Section: "staging"})
	require.NoError(t, err)

	assert.Equal(t, "akab-ct-staging", creds.ClientToken)
	assert.Equal(t, 2048, creds.MaxBody)
}

func TestLoad_EnvironmentFallbacks(t *testing.T) {
	path := writeEdgerc(t, sampleEdgerc)
	t.Setenv("AKAMAI_EDGERC", path)
	t.Setenv("AKAMAI_EDGERC_SECTION", "staging")

	creds, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "staging", creds.Section)
}

func TestLoad_ExplicitBeatsEnvironment(t *testing.T) {
	path := writeEdgerc(t, sampleEdgerc)
	t.Setenv("AKAMAI_EDGERC", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("AKAMAI_EDGERC_SECTION", "staging")

	creds, err := Load(Options{Path: path, Section: "default"})
	require.NoError(t, err)
	assert.Equal(t, "default", creds.Section)
}

func TestResolve_HomeDefault(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	opts, err := Resolve(Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".edgerc"), opts.Path)
	assert.Equal(t, DefaultSection, opts.Section)

	opts, err = Resolve(Options{Path: "~/creds/.edgerc"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "creds", ".edgerc"), opts.Path)
}

func TestLoad_Unreadable(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad_MissingSection(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, sampleEdgerc)

	_, err := Load(Options{Path: path, Section: "production"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestLoad_Directory(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{Path: t.TempDir()})
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad_BlankValue(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, sampleEdgerc)

	_, err := Load(Options{Path: path, Section: "blank"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.NotErrorIs(t, err, ErrSectionNotFound)
}

func TestLoad_HostTrailingSlash(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, sampleEdgerc)

	_, err := Load(Options{Path: path, Section: "slash"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)
	path := writeEdgerc(t, "[unterminated\nhost = x\n")

	_, err := Load(Options{Path: path, Section: "default"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.NotErrorIs(t, err, ErrUnreadable)
}

func TestDescribe(t *testing.T) {
	err := validate.Struct(&Credentials{Host: "h/", ClientToken: "ct", AccessToken: "at"})
	require.Error(t, err)

	msg := describe(err)
	assert.Contains(t, msg, "client_secret is required")
	assert.Contains(t, msg, `host must not end with "/"`)
}
