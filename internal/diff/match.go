package diff

import (
	"fmt"

	"github.com/codalotl/unidiff/internal/simplelogger"
)

// matcher holds the per-call working state of the sequence matcher. Lines are interned to ints so comparisons are O(1). A line is "changed" until an algorithm
// matches it with a line on the other side; matches are always non-crossing.
type matcher struct {
	a, b     []int  // interned old and new lines
	ca, cb   []bool // ca[x] is true if old line x is unmatched; same for cb
	distinct int    // number of distinct lines across both sides
	maxCost  int
	fellBack int // regions where the cost bound was exceeded
}

func newMatcher(oldLines, newLines []string, maxCost int) *matcher {
	ids := make(map[string]int, len(oldLines))
	intern := func(lines []string) []int {
		out := make([]int, len(lines))
		for i, ln := range lines {
			id, ok := ids[ln]
			if !ok {
				id = len(ids)
				ids[ln] = id
			}
			out[i] = id
		}
		return out
	}
	m := &matcher{
		a:       intern(oldLines),
		b:       intern(newLines),
		ca:      make([]bool, len(oldLines)),
		cb:      make([]bool, len(newLines)),
		maxCost: maxCost,
	}
	m.distinct = len(ids)
	for i := range m.ca {
		m.ca[i] = true
	}
	for i := range m.cb {
		m.cb[i] = true
	}
	return m
}

// matchLines computes the edit script from oldLines to newLines with algorithm alg.
func matchLines(oldLines, newLines []string, o options) []Edit {
	m := newMatcher(oldLines, newLines, o.maxCost)

	switch o.algorithm {
	case DiffMatchPatch:
		if !m.diffMatchPatch() {
			m.myersOrPatience()
		}
	case Patience:
		x0, x1, y0, y1 := m.trim(0, len(m.a), 0, len(m.b))
		m.patience(x0, x1, y0, y1)
	default:
		m.myersOrPatience()
	}

	if m.fellBack > 0 && simplelogger.Enabled() {
		simplelogger.Log("diff: %d region(s) exceeded max cost %d (%d old lines, %d new lines); match is not minimal", m.fellBack, m.maxCost, len(oldLines), len(newLines))
	}

	return m.edits()
}

func (m *matcher) myersOrPatience() {
	x0, x1, y0, y1 := m.trim(0, len(m.a), 0, len(m.b))
	if m.myers(x0, x1, y0, y1) {
		return
	}
	m.fellBack++
	anchors := longestIncreasing(m.uniqueAnchors(x0, x1, y0, y1))
	if len(anchors) == 0 {
		// Myers already gave up on this region; it stays one changed block.
		return
	}
	m.matchAround(anchors, x0, x1, y0, y1)
}

func (m *matcher) match(x, y int) {
	m.ca[x] = false
	m.cb[y] = false
}

// trim matches the common prefix and then the common suffix of the region [x0,x1) x [y0,y1), and returns the bounds of what remains.
func (m *matcher) trim(x0, x1, y0, y1 int) (int, int, int, int) {
	for x0 < x1 && y0 < y1 && m.a[x0] == m.b[y0] {
		m.match(x0, y0)
		x0++
		y0++
	}
	for x0 < x1 && y0 < y1 && m.a[x1-1] == m.b[y1-1] {
		x1--
		y1--
		m.match(x1, y1)
	}
	return x0, x1, y0, y1
}

// edits converts the match marks into an edit script. Within a change region, the delete precedes the insert.
func (m *matcher) edits() []Edit {
	var edits []Edit
	n, mm := len(m.ca), len(m.cb)
	x, y := 0, 0
	for x < n || y < mm {
		switch {
		case x < n && m.ca[x]:
			start := x
			for x < n && m.ca[x] {
				x++
			}
			edits = append(edits, Edit{Op: OpDelete, OldStart: start, OldEnd: x, NewStart: y, NewEnd: y})
		case y < mm && m.cb[y]:
			start := y
			for y < mm && m.cb[y] {
				y++
			}
			edits = append(edits, Edit{Op: OpInsert, OldStart: x, OldEnd: x, NewStart: start, NewEnd: y})
		default:
			sx, sy := x, y
			for x < n && y < mm && !m.ca[x] && !m.cb[y] {
				x++
				y++
			}
			if x == sx {
				panic(fmt.Errorf("diff: unbalanced matches at old line %d, new line %d", x, y))
			}
			edits = append(edits, Edit{Op: OpEqual, OldStart: sx, OldEnd: x, NewStart: sy, NewEnd: y})
		}
	}
	return edits
}
