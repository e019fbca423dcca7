package dummy

import (
	"io"
)

// Source is a scripted byte source: every Read returns (a part of) the next piece it was
// initialised with, which is how data arrives over a real network connection. Once the pieces
// are over, Source returns io.EOF, unless another error was set via Fail.
type Source struct {
	data    [][]byte
	pointer int
	pending []byte
	err     error
	reads   int
}

func NewSource(data ...[]byte) *Source {
	return &Source{
		data: data,
		err:  io.EOF,
	}
}

// NewChoppedSource splits data into pieces of n bytes each.
func NewChoppedSource(data string, n int) *Source {
	return NewSource(Chop([]byte(data), n)...)
}

func (s *Source) Read(b []byte) (n int, err error) {
	s.reads++

	if len(s.pending) == 0 {
		if s.pointer >= len(s.data) {
			return 0, s.err
		}

		s.pending = s.data[s.pointer]
		s.pointer++
	}

	n = copy(b, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// Fail replaces io.EOF, returned after all the pieces were consumed, by a custom error.
func (s *Source) Fail(err error) *Source {
	s.err = err
	return s
}

// Reads returns how many times Read was called.
func (s *Source) Reads() int {
	return s.reads
}

// Chop splits data into pieces of n bytes each. The last one may be shorter.
func Chop(data []byte, n int) (parts [][]byte) {
	for i := 0; i < len(data); i += n {
		end := min(i+n, len(data))
		parts = append(parts, data[i:end])
	}

	return parts
}
