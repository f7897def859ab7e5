package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopSyncWriter struct{ bytes.Buffer }

func (nopSyncWriter) Sync() error { return nil }

func TestNewLoggerWritesConsoleOutput(t *testing.T) {
	var buf nopSyncWriter
	l := New(&buf, InfoLevel, false)
	l.Infow("hello", "key", "value")

	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "key")
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf nopSyncWriter
	l := New(&buf, InfoLevel, true)
	l.Infow("json message")

	require.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestDefaultLoggerIsSingleton(t *testing.T) {
	require.Same(t, DefaultLogger(), DefaultLogger())
}

func TestNamedAndWithReturnLogger(t *testing.T) {
	var buf nopSyncWriter
	l := New(&buf, DebugLevel, false)
	named := l.Named("cli").With("component", "encrypt")
	named.Debugw("ready")

	require.Contains(t, buf.String(), "ready")
}
