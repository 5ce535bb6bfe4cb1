package diff

import "sort"

// anchor is a pair of lines, one per side, each occurring exactly once in its side of the region being matched.
type anchor struct {
	x, y int
}

// patience matches the region [x0,x1) x [y0,y1) by divide and conquer: the longest chain of anchors that is increasing on both sides is matched, and the gaps
// between anchors are matched recursively. A gap without anchors is matched with the bounded Myers search and, if that gives up, left as one changed block.
func (m *matcher) patience(x0, x1, y0, y1 int) {
	x0, x1, y0, y1 = m.trim(x0, x1, y0, y1)
	if x0 == x1 || y0 == y1 {
		return
	}

	anchors := longestIncreasing(m.uniqueAnchors(x0, x1, y0, y1))
	if len(anchors) == 0 {
		if !m.myers(x0, x1, y0, y1) {
			m.fellBack++
		}
		return
	}

	m.matchAround(anchors, x0, x1, y0, y1)
}

// matchAround matches anchors, which must lie inside the region, and recursively matches the gaps between them.
func (m *matcher) matchAround(anchors []anchor, x0, x1, y0, y1 int) {
	px, py := x0, y0
	for _, an := range anchors {
		m.patience(px, an.x, py, an.y)
		m.match(an.x, an.y)
		px, py = an.x+1, an.y+1
	}
	m.patience(px, x1, py, y1)
}

// uniqueAnchors returns the anchors of the region ordered by old index.
func (m *matcher) uniqueAnchors(x0, x1, y0, y1 int) []anchor {
	type occurrence struct {
		na, nb int // occurrences on each side
		y      int // last new index
	}
	occ := make(map[int]*occurrence, x1-x0)
	for x := x0; x < x1; x++ {
		o := occ[m.a[x]]
		if o == nil {
			o = &occurrence{}
			occ[m.a[x]] = o
		}
		o.na++
	}
	for y := y0; y < y1; y++ {
		if o := occ[m.b[y]]; o != nil {
			o.nb++
			o.y = y
		}
	}

	var anchors []anchor
	for x := x0; x < x1; x++ {
		if o := occ[m.a[x]]; o.na == 1 && o.nb == 1 {
			anchors = append(anchors, anchor{x: x, y: o.y})
		}
	}
	return anchors
}

// longestIncreasing returns the longest subsequence of anchors (ordered by x) whose y values increase, using patience sorting.
func longestIncreasing(anchors []anchor) []anchor {
	if len(anchors) == 0 {
		return nil
	}
	var tails []int // tails[i] is the index of the smallest last anchor of an increasing run of length i+1
	prev := make([]int, len(anchors))
	for i, an := range anchors {
		j := sort.Search(len(tails), func(j int) bool { return anchors[tails[j]].y >= an.y })
		prev[i] = -1
		if j > 0 {
			prev[i] = tails[j-1]
		}
		if j == len(tails) {
			tails = append(tails, i)
		} else {
			tails[j] = i
		}
	}

	out := make([]anchor, len(tails))
	for i, k := len(tails)-1, tails[len(tails)-1]; i >= 0; i, k = i-1, prev[k] {
		out[i] = anchors[k]
	}
	return out
}
