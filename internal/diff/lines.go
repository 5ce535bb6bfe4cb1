package diff

import "strings"

// SplitLines splits text into lines, keeping the trailing '\n' on each line. The last line has no '\n' if text does not end with one. A '\r' before the '\n' is part of
// the line. Empty text yields nil.
//
// Lines are substrings of text, so strings.Join(SplitLines(text), "") == text.
func SplitLines(text string) []string {
	return splitPreserveEOL(text, defaultEOL)
}

// splitPreserveEOL splits text by eol and preserves the eol on each line, except possibly the last.
func splitPreserveEOL(text, eol string) []string {
	if text == "" {
		return nil
	}
	if eol == "" {
		eol = defaultEOL
	}
	lines := make([]string, 0, strings.Count(text, eol)+1)
	for text != "" {
		idx := strings.Index(text, eol)
		if idx == -1 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx+len(eol)])
		text = text[idx+len(eol):]
	}
	return lines
}

// trimEOL removes a trailing eol from a line if present.
func trimEOL(line, eol string) (string, bool) {
	if eol != "" && strings.HasSuffix(line, eol) {
		return line[:len(line)-len(eol)], true
	}
	return line, false
}
