// Package stash implements a reader that extracts delimiter-terminated byte runs from an
// arbitrary source, reading it chunk by chunk and stashing whatever was read past the
// delimiter for the next call.
package stash

import (
	"bytes"
	"errors"
	"io"

	"github.com/indigo-web/inlet/internal/buffer"
)

// DefaultStagingSize is the size of a buffer a single read from the source is done into.
const DefaultStagingSize = 2048

var (
	ErrTooLarge     = errors.New("stash: no delimiter within the size limit")
	ErrEmptyPattern = errors.New("stash: empty delimiter pattern")
	ErrChunkSize    = errors.New("stash: chunk size must be positive")
)

// Reader is backed by a pushback queue first and by the source second. Every byte pulled
// from the source is handed to a caller exactly once and in order.
type Reader struct {
	source  io.Reader
	staging []byte
	pending *buffer.Queue
	err     error
}

func New(source io.Reader, stagingSize int) *Reader {
	if stagingSize <= 0 {
		stagingSize = DefaultStagingSize
	}

	return &Reader{
		source:  source,
		staging: make([]byte, stagingSize),
		pending: buffer.NewQueue(stagingSize),
	}
}

// Read drains the pushback queue into b. Only if it's empty, a single read from the source
// is made. Bytes that didn't fit into b are pushed back. A source error is returned only
// after everything read before it was handed out.
func (r *Reader) Read(b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}

	if r.pending.Len() > 0 {
		return r.pending.Pop(b), nil
	}

	if r.err != nil {
		return 0, r.err
	}

	read, err := r.source.Read(r.staging)
	n = copy(b, r.staging[:read])
	r.pending.Push(r.staging[n:read])

	if err != nil {
		r.err = err
		if r.pending.Len() > 0 {
			err = nil
		}
	}

	return n, err
}

// ReadUntil is ReadUntilLimit without a limit.
func (r *Reader) ReadUntil(pattern []byte, chunkSize int) ([]byte, error) {
	return r.ReadUntilLimit(pattern, chunkSize, 0)
}

// ReadUntilLimit reads chunks of chunkSize bytes until pattern is met and returns everything
// up to and including it. Bytes following the pattern are pushed back, so the next read
// starts right after the delimiter. The search window of each chunk includes the last
// len(pattern)-1 bytes of the previous ones, therefore a delimiter split between two chunks
// is found too.
//
// If the source is over before the pattern was met, io.ErrUnexpectedEOF is returned. Other
// source errors are returned as is. A positive limit caps the length of the returned run,
// ErrTooLarge is returned when it's exceeded.
func (r *Reader) ReadUntilLimit(pattern []byte, chunkSize, limit int) ([]byte, error) {
	switch {
	case len(pattern) == 0:
		return nil, ErrEmptyPattern
	case chunkSize <= 0:
		return nil, ErrChunkSize
	}

	chunk := make([]byte, chunkSize)
	out := make([]byte, 0, chunkSize)

	for {
		n, err := r.Read(chunk)
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}

			return nil, err
		}

		window := max(0, len(out)-len(pattern)+1)
		out = append(out, chunk[:n]...)

		if i := bytes.Index(out[window:], pattern); i != -1 {
			end := window + i + len(pattern)
			if limit > 0 && end > limit {
				return nil, ErrTooLarge
			}

			r.Unread(out[end:])
			return out[:end:end], nil
		}

		if limit > 0 && len(out) > limit {
			return nil, ErrTooLarge
		}
	}
}

// Unread puts b in front of everything pending, so it's the first thing the next Read
// returns. b is copied.
func (r *Reader) Unread(b []byte) {
	r.pending.Prepend(b)
}

// Pending returns bytes that were read from the source, but not handed out yet. The slice
// is valid until the next call to the Reader.
func (r *Reader) Pending() []byte {
	return r.pending.Bytes()
}

// Reset binds the reader to another source, discarding all the pending data and errors.
func (r *Reader) Reset(source io.Reader) {
	r.source = source
	r.pending.Reset()
	r.err = nil
}
