// Package diff computes line diffs between an "old" and a "new" string and renders them as unified diffs.
//
// Pipeline: text is split into lines (SplitLines), the lines are matched into an edit script (Compute), the script is grouped into hunks with surrounding context
// (Diff.Hunks), and hunks are rendered (Diff.Unified, Diff.WriteUnified, Diff.RenderUnifiedDiff). Unified does all of it in one call:
//
//	fmt.Print(diff.Unified(oldText, newText, 3))
//
// Representation: A Diff holds both texts, their lines, and an ordered slice of Edits. Each Edit has an Op and half-open line ranges on both sides:
//   - OpEqual: lines present on both sides
//   - OpDelete: lines present only in the old side (empty new range)
//   - OpInsert: lines present only in the new side (empty old range)
//
// Invariants:
//   - The old ranges of OpEqual and OpDelete edits tile the old lines in order; the new ranges of OpEqual and OpInsert edits tile the new lines in order.
//   - Adjacent edits have different ops, and a change region is always an OpDelete followed by an OpInsert (either may be absent).
//
// Matching: The default algorithm is Myers' O(N*D) greedy search, which finds a minimal script and matches the earliest possible lines when several minimal scripts
// exist. Its work is bounded by a maximum edit distance (WithMaxCost); beyond it, the region is matched by unique-line anchors (Patience) and, failing that, left as
// one delete/insert block. The result is always a valid script; only its size degrades. WithAlgorithm selects Patience or DiffMatchPatch instead.
//
// Newlines: This package treats '\n' as the line separator. The last line may not end with '\n'; that fact is preserved in lines, in edits, and in rendered output.
//
// All functions are pure and safe for concurrent use.
package diff
