// Package unidiff computes line-oriented differences between two texts and renders them as unified diffs.
//
// ComputeUnifiedDiff is the whole engine in one call. Bytes adds UTF-8 validation for callers holding raw buffers. The internal packages expose the edit script,
// hunks, alternative algorithms, colored rendering, layered configuration, and JSON config diffing.
package unidiff

import (
	"github.com/codalotl/unidiff/internal/diff"
	"github.com/codalotl/unidiff/internal/diffgen"
)

// DefaultContext is the conventional number of unchanged lines shown around each change.
const DefaultContext = diff.DefaultContextSize

// ErrInvalidEncoding is matched (errors.Is) by the error Bytes returns for input that is not valid UTF-8.
var ErrInvalidEncoding = diffgen.ErrInvalidEncoding

// ComputeUnifiedDiff returns the unified diff from before to after with context unchanged lines around each change. It returns "" if the texts are equal. Negative
// context is treated as 0.
func ComputeUnifiedDiff(before, after string, context int) string {
	return diff.Unified(before, after, context)
}

// Bytes is ComputeUnifiedDiff for raw buffers. It fails with an error matching ErrInvalidEncoding if either input is not valid UTF-8.
func Bytes(before, after []byte, context int) ([]byte, error) {
	opts := diffgen.DefaultOptions()
	opts.ContextSize = context
	return diffgen.Diff(before, after, opts)
}
