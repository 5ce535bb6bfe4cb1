package diff

// Hunk is a group of nearby changes plus surrounding context, as shown under one "@@" header of a unified diff.
//
// OldStart and NewStart are 1-based line numbers. When a side has no lines in the hunk (ex: a pure insertion with no context), its start is the number of the
// line preceding the hunk, which is 0 at the beginning of the text.
type Hunk struct {
	OldStart int
	OldLines int // Number of old lines in the hunk (context and deletions).
	NewStart int
	NewLines int // Number of new lines in the hunk (context and insertions).

	// Edits are the hunk's edits, with leading and trailing OpEqual context clipped to the hunk. Ranges index Diff.OldLines and Diff.NewLines.
	Edits []Edit
}

// Hunks groups d's changes into hunks with contextSize lines of unchanged context before and after each run of changes, clipped at the start and end of the text.
// Two runs of changes separated by at most 2*contextSize unchanged lines are merged into one hunk, so hunks never share a line. A negative contextSize is treated
// as 0.
//
// If d has no changes, Hunks returns nil.
func (d Diff) Hunks(contextSize int) []Hunk {
	if contextSize < 0 {
		contextSize = 0
	}

	var hunks []Hunk
	edits := d.Edits
	i := 0
	for i < len(edits) {
		if edits[i].Op == OpEqual {
			i++
			continue
		}

		var group []Edit

		// Pre-context from the tail of the previous equal edit.
		if i > 0 && edits[i-1].Op == OpEqual {
			if k := min(contextSize, edits[i-1].OldLen()); k > 0 {
				group = append(group, equalTail(edits[i-1], k))
			}
		}

		j := i
		for j < len(edits) {
			e := edits[j]
			if e.Op != OpEqual {
				group = append(group, e)
				j++
				continue
			}
			// An equal edit that is not last is always followed by a change. Bridge it if the context windows touch.
			if j+1 < len(edits) && e.OldLen() <= 2*contextSize {
				group = append(group, e)
				j++
				continue
			}
			if k := min(contextSize, e.OldLen()); k > 0 {
				group = append(group, equalHead(e, k))
			}
			break
		}
		i = j

		hunks = append(hunks, newHunk(group))
	}
	return hunks
}

func newHunk(edits []Edit) Hunk {
	first := edits[0]
	h := Hunk{Edits: edits}
	for _, e := range edits {
		h.OldLines += e.OldLen()
		h.NewLines += e.NewLen()
	}
	h.OldStart = first.OldStart
	if h.OldLines > 0 {
		h.OldStart++
	}
	h.NewStart = first.NewStart
	if h.NewLines > 0 {
		h.NewStart++
	}
	return h
}

// equalHead returns the first k lines of the equal edit e.
func equalHead(e Edit, k int) Edit {
	return Edit{Op: OpEqual, OldStart: e.OldStart, OldEnd: e.OldStart + k, NewStart: e.NewStart, NewEnd: e.NewStart + k}
}

// equalTail returns the last k lines of the equal edit e.
func equalTail(e Edit, k int) Edit {
	return Edit{Op: OpEqual, OldStart: e.OldEnd - k, OldEnd: e.OldEnd, NewStart: e.NewEnd - k, NewEnd: e.NewEnd}
}
