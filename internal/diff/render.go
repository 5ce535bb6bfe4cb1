package diff

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Colors (ANSI). Applied only when rendering with color.
const (
	colorReset    = "\x1b[0m"
	colorRed      = "\x1b[31m"
	colorGreen    = "\x1b[32m"
	colorMagenta  = "\x1b[35m"
	colorCyanBold = "\x1b[1;36m"
)

const missingNewlineMarker = "\\ No newline at end of file\n"

// Unified returns the unified diff of d with contextSize lines of context. Without WithFileHeaders there are no "---"/"+++" lines: the output is just the hunks,
// each an "@@ -<old-start>,<old-count> +<new-start>,<new-count> @@" header followed by " ", "-", and "+" prefixed lines. Counts are always explicit, including a
// count of 1.
//
// Each line keeps its original terminator, so the output ends without '\n' iff its last line had none in the source. An unterminated line in the middle of the
// output (ex: a deleted last line followed by insertions) is followed by a bare '\n', unless WithMissingNewlineMarker is given.
//
// If d has no changes, Unified returns "".
func (d Diff) Unified(contextSize int, opts ...Option) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = d.WriteUnified(&b, contextSize, opts...)
	return b.String()
}

// WriteUnified writes the unified diff of d to w. See Unified for the format. It returns the first write error.
func (d Diff) WriteUnified(w io.Writer, contextSize int, opts ...Option) error {
	o := buildOptions(opts)
	hunks := d.Hunks(contextSize)
	if len(hunks) == 0 {
		return nil
	}

	uw := &unifiedWriter{w: w, color: o.color, marker: o.newlineMarker}
	if o.fromFilename != "" || o.toFilename != "" {
		uw.fileHeaders(o.fromFilename, o.toFilename)
	}
	for _, h := range hunks {
		uw.hunk(d, h)
	}
	return uw.err
}

// RenderUnifiedDiff returns a unified diff with "--- fromFilename" and "+++ toFilename" headers. If color, the diff will include ANSI color markers. It returns
// "" if d has no changes.
func (d Diff) RenderUnifiedDiff(color bool, fromFilename string, toFilename string, contextSize int) string {
	return d.Unified(contextSize, WithColor(color), WithFileHeaders(fromFilename, toFilename))
}

// ColorFor reports whether output written to w should be colored: w must be a terminal and the NO_COLOR environment variable must be unset or empty.
func ColorFor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// unifiedWriter writes unified diff lines, remembering the first error.
type unifiedWriter struct {
	w      io.Writer
	color  bool
	marker bool
	open   bool // the last line written had no terminator
	err    error
}

func (uw *unifiedWriter) write(s string) {
	if uw.err != nil {
		return
	}
	_, uw.err = io.WriteString(uw.w, s)
}

func (uw *unifiedWriter) colorize(s, code string) string {
	if !uw.color || code == "" {
		return s
	}
	return code + s + colorReset
}

// closeLine terminates an unterminated previous line before more output follows.
func (uw *unifiedWriter) closeLine() {
	if uw.open {
		uw.write(defaultEOL)
		uw.open = false
	}
}

func (uw *unifiedWriter) fileHeaders(from, to string) {
	uw.write(uw.colorize("--- "+from, colorCyanBold) + defaultEOL)
	uw.write(uw.colorize("+++ "+to, colorCyanBold) + defaultEOL)
}

func (uw *unifiedWriter) hunk(d Diff, h Hunk) {
	uw.closeLine()
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
	uw.write(uw.colorize(header, colorMagenta) + defaultEOL)

	for _, e := range h.Edits {
		switch e.Op {
		case OpEqual:
			for _, ln := range d.OldLines[e.OldStart:e.OldEnd] {
				uw.line(OpEqual, ln, "")
			}
		case OpDelete:
			for _, ln := range d.OldLines[e.OldStart:e.OldEnd] {
				uw.line(OpDelete, ln, colorRed)
			}
		case OpInsert:
			for _, ln := range d.NewLines[e.NewStart:e.NewEnd] {
				uw.line(OpInsert, ln, colorGreen)
			}
		}
	}
}

func (uw *unifiedWriter) line(op Op, text string, code string) {
	uw.closeLine()
	core, terminated := trimEOL(text, defaultEOL)
	uw.write(uw.colorize(op.String()+core, code))
	switch {
	case terminated:
		uw.write(defaultEOL)
	case uw.marker:
		uw.write(defaultEOL + missingNewlineMarker)
	default:
		uw.open = true
	}
}
