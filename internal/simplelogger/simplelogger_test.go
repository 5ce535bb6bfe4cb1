package simplelogger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesAndAppends(t *testing.T) {
	t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "unidiff.log"))

	Log("diff: %d region(s) exceeded max cost %d", 1, 8)
	Log(" %d", 123)

	b, err := os.ReadFile(os.Getenv(EnvLogFile))
	require.NoError(t, err)
	require.Equal(t, "diff: 1 region(s) exceeded max cost 8\n 123\n", string(b))
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	Log("should not %s", "panic")
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvLogFile, dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEnabled(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	require.False(t, Enabled())

	t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "unidiff.log"))
	require.True(t, Enabled())
}
