package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ConsoleRespectsDebug(t *testing.T) {
	var quiet, loud bytes.Buffer

	l, err := New(Options{Console: &quiet})
	require.NoError(t, err)
	l.Debug("hidden detail")
	l.Info("fetching maps", zap.Int("count", 2))
	require.NoError(t, l.Close())

	assert.NotContains(t, quiet.String(), "hidden detail")
	assert.Contains(t, quiet.String(), "INFO")
	assert.Contains(t, quiet.String(), "fetching maps")
	assert.Contains(t, quiet.String(), `"count": 2`)

	l, err = New(Options{Console: &loud, Debug: true})
	require.NoError(t, err)
	l.Debug("shown detail")
	require.NoError(t, l.Close())

	assert.Contains(t, loud.String(), "shown detail")
}

func TestNew_FileAlwaysDebug(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "siteshield.log")

	l, err := New(Options{Console: &console, FilePath: path})
	require.NoError(t, err)
	l.Debug("response body", zap.String("body", `{"title":"Forbidden"}`))
	l.Info("done")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
	assert.Contains(t, string(data), "response body")
	assert.Contains(t, string(data), "done")
	assert.NotContains(t, console.String(), "response body")
}

func TestNew_BadFilePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := New(Options{FilePath: filepath.Join(blocker, "x.log")})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	assert.NoError(t, l.Close())
}
