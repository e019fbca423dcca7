package stash

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/indigo-web/inlet/transport/dummy"
	"github.com/stretchr/testify/require"
)

var (
	crlf     = []byte("\r\n")
	crlfcrlf = []byte("\r\n\r\n")
)

func BenchmarkReadUntil(b *testing.B) {
	line := strings.Repeat("a", 500) + "\r\n"
	source := strings.NewReader(line)
	r := New(source, DefaultStagingSize)

	b.SetBytes(int64(len(line)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		source.Reset(line)
		r.Reset(source)
		_, _ = r.ReadUntil(crlf, 16)
	}
}

func TestReader_Read(t *testing.T) {
	t.Run("surplus is pushed back", func(t *testing.T) {
		r := New(strings.NewReader("Hello, world!"), DefaultStagingSize)
		buff := make([]byte, 5)

		n, err := r.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "Hello", string(buff[:n]))
		require.Equal(t, ", world!", string(r.Pending()))
	})

	t.Run("pending is drained first", func(t *testing.T) {
		source := dummy.NewSource([]byte("abc"), []byte("def"))
		r := New(source, DefaultStagingSize)
		r.Unread([]byte("XY"))
		buff := make([]byte, 8)

		n, err := r.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "XY", string(buff[:n]))
		require.Zero(t, source.Reads())

		n, err = r.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "abc", string(buff[:n]))
	})

	t.Run("small staging", func(t *testing.T) {
		r := New(strings.NewReader("Hello, world!"), 4)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(data))
	})

	t.Run("error after data", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		r := New(dummy.NewSource([]byte("Hello")).Fail(errBroken), DefaultStagingSize)
		buff := make([]byte, 2)

		data, err := readAll(r, buff)
		require.Equal(t, "Hello", string(data))
		require.ErrorIs(t, err, errBroken)
	})

	t.Run("empty buffer", func(t *testing.T) {
		source := dummy.NewSource([]byte("Hello"))
		r := New(source, DefaultStagingSize)
		n, err := r.Read(nil)
		require.NoError(t, err)
		require.Zero(t, n)
		require.Zero(t, source.Reads())
	})
}

func TestReader_ReadUntil(t *testing.T) {
	t.Run("delimiter mid chunk", func(t *testing.T) {
		r := New(strings.NewReader("ABCDEF012345\r\nXX"), DefaultStagingSize)
		out, err := r.ReadUntil(crlf, 16)
		require.NoError(t, err)
		require.Equal(t, "ABCDEF012345\r\n", string(out))
		require.Equal(t, "XX", string(r.Pending()))

		buff := make([]byte, 16)
		n, err := r.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "XX", string(buff[:n]))
	})

	t.Run("pattern never met", func(t *testing.T) {
		r := New(strings.NewReader("ABCD"), DefaultStagingSize)
		out, err := r.ReadUntil([]byte("badpattern"), 16)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Nil(t, out)
	})

	t.Run("empty source", func(t *testing.T) {
		r := New(dummy.NewSource(), DefaultStagingSize)
		_, err := r.ReadUntil(crlf, 16)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("spanning multiple chunks", func(t *testing.T) {
		line := strings.Repeat("a", 100) + "\r\n"
		r := New(strings.NewReader(line+"rest"), DefaultStagingSize)
		out, err := r.ReadUntil(crlf, 16)
		require.NoError(t, err)
		require.Equal(t, line, string(out))
		require.Equal(t, "rest", string(r.Pending()))
	})

	t.Run("delimiter split between chunks", func(t *testing.T) {
		// the CR is the last byte of the first chunk, the LF is the first one of the second
		r := New(strings.NewReader("0123456789ABCDE\r\nXX"), DefaultStagingSize)
		out, err := r.ReadUntil(crlf, 16)
		require.NoError(t, err)
		require.Equal(t, "0123456789ABCDE\r\n", string(out))
		require.Equal(t, "XX", string(r.Pending()))
	})

	t.Run("long delimiter split between chunks", func(t *testing.T) {
		for split := 1; split < len(crlfcrlf); split++ {
			head := strings.Repeat("h", 64-split)
			r := New(strings.NewReader(head+"\r\n\r\nbody"), DefaultStagingSize)
			out, err := r.ReadUntil(crlfcrlf, 64)
			require.NoError(t, err, split)
			require.Equal(t, head+"\r\n\r\n", string(out), split)
			require.Equal(t, "body", string(r.Pending()), split)
		}
	})

	t.Run("byte by byte", func(t *testing.T) {
		const data = "GET / HTTP/1.1\r\nHost: x\r\n\r\nbody"
		r := New(dummy.NewChoppedSource(data, 1), DefaultStagingSize)

		line, err := r.ReadUntil(crlf, 16)
		require.NoError(t, err)
		require.Equal(t, "GET / HTTP/1.1\r\n", string(line))

		block, err := r.ReadUntil(crlfcrlf, 64)
		require.NoError(t, err)
		require.Equal(t, "Host: x\r\n\r\n", string(block))

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "body", string(rest))
	})

	t.Run("consecutive runs keep order", func(t *testing.T) {
		// everything arrives at once and is served out of the pushback queue
		r := New(strings.NewReader("a\r\nbb\r\nccc\r\ndddd"), DefaultStagingSize)

		for _, want := range []string{"a\r\n", "bb\r\n", "ccc\r\n"} {
			out, err := r.ReadUntil(crlf, 2)
			require.NoError(t, err)
			require.Equal(t, want, string(out))
		}

		require.Equal(t, "dddd", string(r.Pending()))
	})

	t.Run("limit", func(t *testing.T) {
		r := New(strings.NewReader(strings.Repeat("a", 100)+"\r\n"), DefaultStagingSize)
		_, err := r.ReadUntilLimit(crlf, 16, 50)
		require.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("delimiter right past the limit", func(t *testing.T) {
		r := New(strings.NewReader("abcd\r\n"), DefaultStagingSize)
		_, err := r.ReadUntilLimit(crlf, 16, 5)
		require.ErrorIs(t, err, ErrTooLarge)

		r = New(strings.NewReader("abcd\r\n"), DefaultStagingSize)
		out, err := r.ReadUntilLimit(crlf, 16, 6)
		require.NoError(t, err)
		require.Equal(t, "abcd\r\n", string(out))
	})

	t.Run("source error", func(t *testing.T) {
		r := New(dummy.NewSource([]byte("GET / HT")).Fail(os.ErrDeadlineExceeded), DefaultStagingSize)
		_, err := r.ReadUntil(crlf, 16)
		require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	})

	t.Run("bad arguments", func(t *testing.T) {
		r := New(strings.NewReader("data"), DefaultStagingSize)
		_, err := r.ReadUntil(nil, 16)
		require.ErrorIs(t, err, ErrEmptyPattern)
		_, err = r.ReadUntil(crlf, 0)
		require.ErrorIs(t, err, ErrChunkSize)
	})
}

func readAll(from io.Reader, buff []byte) ([]byte, error) {
	var full []byte

	for {
		n, err := from.Read(buff)
		full = append(full, buff[:n]...)
		if err != nil {
			return full, err
		}
	}
}
