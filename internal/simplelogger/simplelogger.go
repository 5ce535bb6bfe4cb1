// Package simplelogger appends diagnostics to a file chosen by the environment. Diffing is pure and returns no errors, so this is the only place a degraded result
// (ex: a match that gave up on minimality) is reported.
package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// EnvLogFile names the environment variable holding the log file path.
const EnvLogFile = "UNIDIFF_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether UNIDIFF_LOG_FILE is set. Callers may use it to skip building expensive messages.
func Enabled() bool {
	return os.Getenv(EnvLogFile) != ""
}

// Log formats a message printf-style and appends it, newline-terminated, to the file named by UNIDIFF_LOG_FILE. It is a no-op when the variable is unset or empty,
// or when the path can't be opened as a file.
func Log(format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}

	// One open/write/close per message keeps concurrent callers' lines whole.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(b.Bytes())
}
