package diff

import "slices"

// myers matches the region [x0,x1) x [y0,y1) along a shortest edit script, using the greedy forward search from Myers' "An O(ND) Difference Algorithm and Its
// Variations". Diagonals are followed as far as possible from the start, so the earliest candidate lines are matched first.
//
// It returns false and leaves the region untouched if the edit distance exceeds m.maxCost (when m.maxCost > 0).
//
// The V array of every round d is kept (2d+1 entries) so the path can be recovered; memory is O(D^2) and time is O((N+M)*D).
func (m *matcher) myers(x0, x1, y0, y1 int) bool {
	n, mm := x1-x0, y1-y0
	if n == 0 || mm == 0 {
		// Nothing can match; everything in the region stays changed.
		return true
	}

	limit := n + mm
	if m.maxCost > 0 && m.maxCost < limit {
		limit = m.maxCost
	}

	off := limit + 1
	v := make([]int, 2*limit+3)
	var trace [][]int

	snake := func(x, y int) int {
		for x < n && y < mm && m.a[x0+x] == m.b[y0+y] {
			x++
			y++
		}
		return x
	}

	for d := 0; d <= limit; d++ {
		prev := func(k int) int { return v[off+k] }
		for k := -d; k <= d; k += 2 {
			var x int
			if d == 0 {
				x = 0
			} else {
				x, _ = myersStep(prev, k, d, n, mm)
				if x < 0 {
					v[off+k] = -1
					continue
				}
			}
			x = snake(x, x-k)
			v[off+k] = x
			if x == n && x-k == mm {
				trace = append(trace, slices.Clone(v[off-d:off+d+1]))
				m.myersBacktrack(trace, x0, y0, n, mm)
				return true
			}
		}
		trace = append(trace, slices.Clone(v[off-d:off+d+1]))
	}
	return false
}

// myersStep returns the x reached on diagonal k in round d > 0 before following the snake, and whether it got there with a down move (an insertion) rather than
// a right move (a deletion). prev(k) is the furthest x on diagonal k after round d-1, or -1 if that diagonal was unreachable. The move reaching further wins; on a
// tie the down move wins. x is -1 if diagonal k is unreachable in round d.
func myersStep(prev func(k int) int, k, d, n, mm int) (x int, down bool) {
	downX, rightX := -1, -1
	if k+1 <= d-1 {
		if px := prev(k + 1); px >= 0 && px-k <= mm {
			downX = px
		}
	}
	if k-1 >= -(d - 1) {
		if px := prev(k - 1); px >= 0 && px+1 <= n {
			rightX = px + 1
		}
	}
	switch {
	case downX < 0 && rightX < 0:
		return -1, false
	case downX >= rightX:
		return downX, true
	default:
		return rightX, false
	}
}

// myersBacktrack walks the recorded rounds from (n, mm) back to (0, 0), matching every diagonal step of the path.
func (m *matcher) myersBacktrack(trace [][]int, x0, y0, n, mm int) {
	x, y := n, mm
	for d := len(trace) - 1; d > 0; d-- {
		round := trace[d-1]
		prev := func(k int) int { return round[k+d-1] }

		k := x - y
		sx, down := myersStep(prev, k, d, n, mm)
		sy := sx - k
		for x > sx && y > sy {
			x--
			y--
			m.match(x0+x, y0+y)
		}
		if down {
			y--
		} else {
			x--
		}
	}
	for x > 0 && y > 0 {
		x--
		y--
		m.match(x0+x, y0+y)
	}
}
