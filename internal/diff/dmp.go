package diff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// surrogateSkip shifts ids past the UTF-16 surrogate range, which has no valid rune encoding.
const surrogateSkip = 0xE000 - 0xD800

// diffMatchPatch matches lines with diffmatchpatch's rune diff, encoding each interned line as one rune. It reports false if there are too many distinct lines
// to encode as runes.
func (m *matcher) diffMatchPatch() bool {
	if m.distinct > utf8.MaxRune-surrogateSkip {
		return false
	}

	toRunes := func(ids []int) []rune {
		out := make([]rune, len(ids))
		for i, id := range ids {
			if id >= 0xD800 {
				id += surrogateSkip
			}
			out[i] = rune(id)
		}
		return out
	}

	dmp := diffmatchpatch.New()
	// No deadline: the result must not depend on machine speed.
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(toRunes(m.a), toRunes(m.b), false)
	diffs = dmp.DiffCleanupMerge(diffs)

	x, y := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for i := 0; i < n; i++ {
				m.match(x+i, y+i)
			}
			x += n
			y += n
		case diffmatchpatch.DiffDelete:
			x += n
		case diffmatchpatch.DiffInsert:
			y += n
		}
	}
	return true
}
