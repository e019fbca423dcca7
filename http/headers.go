package http

import (
	"iter"
	"slices"
)

// Headers are raw header lines in the order they came in. Lines are neither normalized nor
// split into key and value, and duplicates are kept.
type Headers struct {
	lines []string
}

func NewHeaders(lines []string) Headers {
	return Headers{lines: lines}
}

// Len returns the number of header lines.
func (h Headers) Len() int {
	return len(h.lines)
}

// Empty tells whether there are no header lines at all.
func (h Headers) Empty() bool {
	return len(h.lines) == 0
}

// At returns i-th line. Panics if i is out of range, as slice indexing does.
func (h Headers) At(i int) string {
	return h.lines[i]
}

// Lines returns a copy of all the lines, so modifying it doesn't affect the request.
func (h Headers) Lines() []string {
	return slices.Clone(h.lines)
}

// All iterates over lines along with their positions.
func (h Headers) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range h.lines {
			if !yield(i, line) {
				return
			}
		}
	}
}
