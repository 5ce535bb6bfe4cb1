// Package diffgen is the byte boundary in front of the diff engine: it decodes raw buffers, rejects invalid UTF-8 with a distinct error, runs the diff, and hands
// back encoded bytes, optionally behind "---"/"+++" file headers.
package diffgen

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/codalotl/unidiff/internal/diff"
)

// ErrInvalidEncoding is matched (errors.Is) by every EncodingError.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Side names which input an EncodingError refers to.
type Side string

const (
	SideBefore Side = "before"
	SideAfter  Side = "after"
)

// EncodingError reports an input that is not valid UTF-8.
type EncodingError struct {
	Side   Side
	Offset int // Byte offset of the first invalid sequence.
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("diffgen: %s text: %v at byte %d", e.Side, ErrInvalidEncoding, e.Offset)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// Options configures Diff. The zero value means no context lines; use DefaultOptions for the conventional 3.
type Options struct {
	ContextSize int
	Algorithm   diff.Algorithm
	MaxCost     int // 0 means diff.DefaultMaxCost; negative means unbounded.

	// FromFile and ToFile, if either is set, are written as "--- FromFile" and "+++ ToFile" before a non-empty diff.
	FromFile string
	ToFile   string

	MissingNewlineMarker bool
}

// DefaultOptions returns options with 3 lines of context and the default algorithm.
func DefaultOptions() Options {
	return Options{ContextSize: diff.DefaultContextSize}
}

// diffOptions converts o to engine options.
func (o Options) diffOptions() []diff.Option {
	maxCost := o.MaxCost
	switch {
	case maxCost == 0:
		maxCost = diff.DefaultMaxCost
	case maxCost < 0:
		maxCost = 0
	}
	opts := []diff.Option{
		diff.WithAlgorithm(o.Algorithm),
		diff.WithMaxCost(maxCost),
	}
	if o.FromFile != "" || o.ToFile != "" {
		opts = append(opts, diff.WithFileHeaders(o.FromFile, o.ToFile))
	}
	if o.MissingNewlineMarker {
		opts = append(opts, diff.WithMissingNewlineMarker())
	}
	return opts
}

// Diff decodes before and after as UTF-8 and returns their unified diff. It returns an *EncodingError if either input is not valid UTF-8; invalid bytes are never
// replaced. The result is empty if the inputs are equal.
func Diff(before, after []byte, opts Options) ([]byte, error) {
	if err := validate(before, SideBefore); err != nil {
		return nil, err
	}
	if err := validate(after, SideAfter); err != nil {
		return nil, err
	}

	out := Text(string(before), string(after), opts)
	if out == "" {
		return nil, nil
	}
	return []byte(out), nil
}

// Text returns the unified diff of two already-decoded texts.
func Text(before, after string, opts Options) string {
	if before == after {
		return ""
	}
	dopts := opts.diffOptions()
	return diff.Compute(before, after, dopts...).Unified(opts.ContextSize, dopts...)
}

func validate(b []byte, side Side) error {
	if utf8.Valid(b) {
		return nil
	}
	offset := 0
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return &EncodingError{Side: side, Offset: offset}
}
