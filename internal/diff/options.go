package diff

import "fmt"

// Algorithm selects how Compute matches lines.
type Algorithm int

const (
	// Myers is the greedy O(N*D) shortest edit script search. It is exact unless the edit distance exceeds the cost bound, in which case the region is matched with Patience.
	Myers Algorithm = iota

	// Patience matches lines that are unique in both regions first, then recurses on the gaps between them. Gaps without unique lines use a bounded Myers search.
	Patience

	// DiffMatchPatch uses the line mode of github.com/sergi/go-diff.
	DiffMatchPatch
)

// DefaultMaxCost is the default bound on the edit distance explored by the Myers search.
const DefaultMaxCost = 2048

// DefaultContextSize is the conventional number of context lines in a unified diff.
const DefaultContextSize = 3

func (a Algorithm) String() string {
	switch a {
	case Myers:
		return "myers"
	case Patience:
		return "patience"
	case DiffMatchPatch:
		return "diffmatchpatch"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the Algorithm named s ("myers", "patience", or "diffmatchpatch").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "myers", "":
		return Myers, nil
	case "patience":
		return Patience, nil
	case "diffmatchpatch", "dmp":
		return DiffMatchPatch, nil
	}
	return Myers, fmt.Errorf("unknown diff algorithm %q", s)
}

type options struct {
	algorithm     Algorithm
	maxCost       int
	newlineMarker bool
	color         bool
	fromFilename  string
	toFilename    string
}

// Option configures Compute and the renderers.
type Option func(*options)

// WithAlgorithm selects the matching algorithm. The default is Myers.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithMaxCost bounds the edit distance explored by the Myers search. Exceeding the bound degrades the quality of the match, never its validity. n <= 0 means unbounded.
func WithMaxCost(n int) Option {
	return func(o *options) {
		o.maxCost = n
	}
}

// WithMissingNewlineMarker makes the renderers follow a line that has no trailing newline with "\n\ No newline at end of file\n".
func WithMissingNewlineMarker() Option {
	return func(o *options) {
		o.newlineMarker = true
	}
}

// WithColor makes the renderers wrap headers and changed lines in ANSI color escapes. See ColorFor.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

// WithFileHeaders makes the renderers start a non-empty diff with "--- from" and "+++ to" lines.
func WithFileHeaders(from, to string) Option {
	return func(o *options) {
		o.fromFilename = from
		o.toFilename = to
	}
}

func buildOptions(opts []Option) options {
	o := options{algorithm: Myers, maxCost: DefaultMaxCost}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
