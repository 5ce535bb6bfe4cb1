// Package configdiff produces unified diffs between two versions of a JSON document. Both versions are first normalized (sorted keys, one value per line) so that
// the diff reflects changes in content rather than in formatting.
package configdiff

import (
	"fmt"
	"strings"

	"github.com/codalotl/unidiff/internal/config"
	"github.com/codalotl/unidiff/internal/diff"
	"github.com/codalotl/unidiff/internal/simplelogger"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Header precedes every non-empty diff returned by Generate.
const Header = "--- before\n+++ after\n"

var normalizeOptions = ojg.Options{
	Indent:  2,
	Sort:    true,
	OmitNil: true,
	UseTags: true,
}

// NormalizeJSON returns object as indented JSON with lexicographically sorted keys and nil values omitted. If object is a string, it is parsed as a JSON object
// first.
func NormalizeJSON(object any) (string, error) {
	data := object
	if s, ok := object.(string); ok {
		var m map[string]any
		if err := oj.Unmarshal([]byte(s), &m); err != nil {
			return "", err
		}
		data = m
	}

	opts := normalizeOptions
	out, err := oj.Marshal(data, &opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Generate returns the unified diff from prevConf to newConf, both JSON objects, prefixed with Header. It returns "" when cfg disables diffing or when the documents
// are equal after normalization.
func Generate(cfg config.Config, newConf, prevConf string) (string, error) {
	if cfg.Disable {
		simplelogger.Log("configdiff: disabled (set by %s)", cfg.OriginOf(config.KeyDisable).SourceType)
		return "", nil
	}
	if newConf == prevConf {
		return "", nil
	}

	before, err := NormalizeJSON(prevConf)
	if err != nil {
		return "", fmt.Errorf("failed to normalize json for previous config: %w", err)
	}
	after, err := NormalizeJSON(newConf)
	if err != nil {
		return "", fmt.Errorf("failed to normalize json for new config: %w", err)
	}
	if before == after {
		return "", nil
	}

	opts := cfg.Options()
	d := diff.Compute(terminate(before), terminate(after), opts...)
	return Header + d.Unified(cfg.Context, opts...), nil
}

// terminate ends s with a newline so the closing brace diffs as an ordinary line.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// IsReorderingDiff reports whether unified diff only moves lines around: every added line pairs with a removed line of the same content, terminator included.
// Everything before the first hunk header (file headers included) is ignored. A diff with no changed lines counts as a reordering.
//
// A line is known to lack a terminator only when a "\ No newline at end of file" marker follows it or it ends the diff. Without markers, an unterminated line in the
// middle of a diff is indistinguishable from a terminated one.
func IsReorderingDiff(unified string) bool {
	lines := diff.SplitLines(unified)
	i := 0
	for i < len(lines) && !strings.HasPrefix(lines[i], "@@") {
		i++
	}

	// Unpaired lines, keyed by content with terminator; positive counts are surplus additions, negative are surplus removals.
	unpaired := map[string]int{}
	for j := i; j < len(lines); j++ {
		line := lines[j]
		if j+1 < len(lines) && strings.HasPrefix(lines[j+1], "\\") {
			line = strings.TrimSuffix(line, "\n")
		}
		var delta int
		switch {
		case strings.HasPrefix(line, "+"):
			delta = 1
		case strings.HasPrefix(line, "-"):
			delta = -1
		default:
			continue
		}
		key := line[1:]
		unpaired[key] += delta
		if unpaired[key] == 0 {
			delete(unpaired, key)
		}
	}
	return len(unpaired) == 0
}
