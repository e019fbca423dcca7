package status

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/inlet/http/proto"
)

var (
	// ErrFormat is any structural failure of the request head: wrong number of tokens in
	// the request line, unrecognized method or version, or bytes that aren't valid text.
	ErrFormat = errors.New("unexpected format while parsing request")
	// ErrRequestLineTooLarge and ErrHeaderFieldsTooLarge are returned when no delimiter was
	// found within the configured limits.
	ErrRequestLineTooLarge  = errors.New("request line is too long")
	ErrHeaderFieldsTooLarge = errors.New("too large headers section")
)

// UnsupportedVersionError is returned for a version which is valid, but isn't processed.
type UnsupportedVersionError struct {
	Proto proto.Proto
}

func (u UnsupportedVersionError) Error() string {
	return "unsupported HTTP version: " + u.Proto.String()
}

// IOError wraps a failure of the underlying byte source.
type IOError struct {
	Err error
}

func (i IOError) Error() string {
	return fmt.Sprintf("IO error parsing request: %s", i.Err)
}

func (i IOError) Unwrap() error {
	return i.Err
}

// Kind returns a short name of the error class, suitable for logs and metrics labels.
func Kind(err error) string {
	var unsupported UnsupportedVersionError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.As(err, &unsupported):
		return "unsupported-version"
	case errors.Is(err, ErrRequestLineTooLarge), errors.Is(err, ErrHeaderFieldsTooLarge):
		return "too-large"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "eof"
	case errors.Is(err, os.ErrDeadlineExceeded):
		return "timeout"
	case errors.As(err, new(IOError)):
		return "io"
	default:
		return "unknown"
	}
}

// CodeOf maps an error to the status code it should be answered with.
func CodeOf(err error) Code {
	var unsupported UnsupportedVersionError

	switch {
	case errors.Is(err, ErrFormat):
		return BadRequest
	case errors.As(err, &unsupported):
		return HTTPVersionNotSupported
	case errors.Is(err, ErrRequestLineTooLarge):
		return RequestURITooLong
	case errors.Is(err, ErrHeaderFieldsTooLarge):
		return HeaderFieldsTooLarge
	case errors.Is(err, os.ErrDeadlineExceeded):
		return RequestTimeout
	default:
		return InternalServerError
	}
}
