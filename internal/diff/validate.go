package diff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	if strings.Join(d.OldLines, "") != d.OldText {
		return fmt.Errorf("diff: OldLines do not reconstruct OldText")
	}
	if strings.Join(d.NewLines, "") != d.NewText {
		return fmt.Errorf("diff: NewLines do not reconstruct NewText")
	}

	oldPos, newPos := 0, 0
	for ei, e := range d.Edits {
		if e.OldStart != oldPos || e.NewStart != newPos {
			return fmt.Errorf("edit[%d]: starts at old %d, new %d; want old %d, new %d", ei, e.OldStart, e.NewStart, oldPos, newPos)
		}
		if e.OldEnd < e.OldStart || e.NewEnd < e.NewStart {
			return fmt.Errorf("edit[%d]: negative range", ei)
		}

		switch e.Op {
		case OpEqual:
			if e.OldLen() == 0 || e.OldLen() != e.NewLen() {
				return fmt.Errorf("edit[%d]: OpEqual requires equal, non-empty ranges", ei)
			}
			for i := 0; i < e.OldLen(); i++ {
				if d.OldLines[e.OldStart+i] != d.NewLines[e.NewStart+i] {
					return fmt.Errorf("edit[%d]: OpEqual old line %d != new line %d", ei, e.OldStart+i, e.NewStart+i)
				}
			}
		case OpDelete:
			if e.OldLen() == 0 || e.NewLen() != 0 {
				return fmt.Errorf("edit[%d]: OpDelete requires a non-empty old range and an empty new range", ei)
			}
		case OpInsert:
			if e.NewLen() == 0 || e.OldLen() != 0 {
				return fmt.Errorf("edit[%d]: OpInsert requires a non-empty new range and an empty old range", ei)
			}
		default:
			return fmt.Errorf("edit[%d]: unknown op %d", ei, e.Op)
		}

		if ei > 0 {
			prev := d.Edits[ei-1].Op
			if prev == e.Op {
				return fmt.Errorf("edit[%d]: adjacent edits share op %d", ei, e.Op)
			}
			if prev == OpInsert && e.Op == OpDelete {
				return fmt.Errorf("edit[%d]: OpDelete follows OpInsert", ei)
			}
		}

		oldPos = e.OldEnd
		newPos = e.NewEnd
	}

	if oldPos != len(d.OldLines) {
		return fmt.Errorf("diff: edits cover %d of %d old lines", oldPos, len(d.OldLines))
	}
	if newPos != len(d.NewLines) {
		return fmt.Errorf("diff: edits cover %d of %d new lines", newPos, len(d.NewLines))
	}
	return nil
}
