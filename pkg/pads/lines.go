package pads

import (
	"iter"
	"strings"
)

const (
	commentPrefix = "//"
	byteOrderMark = "\ufeff"
)

// significantLines yields (line number, trimmed text) for every line that is
// neither blank nor a comment. Numbers count all physical lines from 1.
// A leading byte order mark is dropped.
func significantLines(text string) iter.Seq2[int, string] {
	text = strings.TrimPrefix(text, byteOrderMark)
	return func(yield func(int, string) bool) {
		num := 0
		for raw := range strings.SplitSeq(text, "\n") {
			num++
			line := strings.TrimSpace(raw)
			if line == "" || strings.HasPrefix(line, commentPrefix) {
				continue
			}
			if !yield(num, line) {
				return
			}
		}
	}
}

// physicalLineCount is the number of the last line, counting the empty
// remainder after a trailing newline.
func physicalLineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
