package diff

import (
	"fmt"
)

// Compute diffs oldText to newText line by line, returning a Diff. The default algorithm is Myers with a cost bound of DefaultMaxCost.
//
// Compute never fails: any two texts admit at least the trivial delete-everything, insert-everything script. It panics only if the computed script violates the
// Diff invariants, which indicates a bug.
func Compute(oldText, newText string, opts ...Option) Diff {
	o := buildOptions(opts)

	oldLines := SplitLines(oldText)
	newLines := SplitLines(newText)

	d := Diff{
		OldText:  oldText,
		NewText:  newText,
		OldLines: oldLines,
		NewLines: newLines,
	}
	if len(oldLines) > 0 || len(newLines) > 0 {
		d.Edits = matchLines(oldLines, newLines, o)
	}

	if err := d.validate(); err != nil {
		panic(fmt.Errorf("Compute: validate failed with %v", err))
	}

	return d
}

// DiffText diffs oldText to newText with the default options.
func DiffText(oldText, newText string) Diff {
	return Compute(oldText, newText)
}

// Unified returns the unified diff from before to after with contextSize lines of context, without file headers. It returns "" if the texts have the same lines.
func Unified(before, after string, contextSize int, opts ...Option) string {
	if before == after {
		return ""
	}
	return Compute(before, after, opts...).Unified(contextSize, opts...)
}
