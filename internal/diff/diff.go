package diff

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// String returns the unified-diff line prefix for op: " ", "-", or "+".
func (op Op) String() string {
	switch op {
	case OpEqual:
		return " "
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	}
	return "?"
}

// Diff is a line diff from old text to new text.
//
// As an illustration: imagine a code file where two separate functions are edited. This will produce:
//   - Edits[0] will be OpEqual (the prefix of the file).
//   - Edits[1] and Edits[2] will be an OpDelete of the old lines of the first function followed by an OpInsert of its new lines.
//   - Edits[3] will be OpEqual (the lines between the edits).
//   - Edits[4] will be the second change. Imagine some code was strictly inserted: a single OpInsert.
//   - Edits[last] will be OpEqual (the suffix of the file).
//
// Invariants:
//   - concat(OldLines) == OldText and concat(NewLines) == NewText
//   - The old ranges of OpEqual and OpDelete edits, in order, tile [0, len(OldLines)).
//   - The new ranges of OpEqual and OpInsert edits, in order, tile [0, len(NewLines)).
//   - Adjacent edits have different ops; an OpInsert is never immediately followed by an OpDelete.
type Diff struct {
	OldText  string   // Entire original text.
	NewText  string   // Entire revised text.
	OldLines []string // OldText split by SplitLines.
	NewLines []string // NewText split by SplitLines.
	Edits    []Edit   // Ordered edit script covering both sides.
}

// Edit is one operation of an edit script. Ranges are half-open indexes into Diff.OldLines and Diff.NewLines.
//
// Operations:
//   - OpEqual: OldEnd-OldStart == NewEnd-NewStart > 0, and the lines are equal pairwise.
//   - OpDelete: OldEnd > OldStart and NewStart == NewEnd (the position in the new sequence where the lines were removed).
//   - OpInsert: NewEnd > NewStart and OldStart == OldEnd (the position in the old sequence where the lines were added).
type Edit struct {
	Op       Op
	OldStart int
	OldEnd   int
	NewStart int
	NewEnd   int
}

// OldLen is the number of old lines covered by e.
func (e Edit) OldLen() int { return e.OldEnd - e.OldStart }

// NewLen is the number of new lines covered by e.
func (e Edit) NewLen() int { return e.NewEnd - e.NewStart }

// HasChanges reports whether d contains any non-equal edit.
func (d Diff) HasChanges() bool {
	for _, e := range d.Edits {
		if e.Op != OpEqual {
			return true
		}
	}
	return false
}

// Stats returns the number of deleted and inserted lines in d.
func (d Diff) Stats() (deleted, inserted int) {
	for _, e := range d.Edits {
		switch e.Op {
		case OpDelete:
			deleted += e.OldLen()
		case OpInsert:
			inserted += e.NewLen()
		}
	}
	return deleted, inserted
}

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find callsites.
const defaultEOL = "\n"
