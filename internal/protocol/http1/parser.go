package http1

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/inlet/config"
	"github.com/indigo-web/inlet/http"
	"github.com/indigo-web/inlet/http/method"
	"github.com/indigo-web/inlet/http/proto"
	"github.com/indigo-web/inlet/http/status"
	"github.com/indigo-web/inlet/internal/stash"
	"github.com/indigo-web/utils/uf"
)

var (
	crlf     = []byte("\r\n")
	crlfcrlf = []byte("\r\n\r\n")
)

// Parser reads a single request head out of a stash.Reader. Bytes following the head, if
// any, are left pending in the reader.
type Parser struct {
	cfg    *config.Config
	reader *stash.Reader
}

func NewParser(cfg *config.Config, reader *stash.Reader) *Parser {
	return &Parser{
		cfg:    cfg,
		reader: reader,
	}
}

// Parse returns either a complete request or an error. Structural problems result in
// status.ErrFormat, a recognized but not processed version in status.UnsupportedVersionError,
// a source which is over too early in io.ErrUnexpectedEOF and any other source failure in
// status.IOError.
func (p *Parser) Parse() (*http.Request, error) {
	line, err := p.startLine()
	if err != nil {
		return nil, err
	}

	m, target, version, err := splitStartLine(line)
	if err != nil {
		return nil, err
	}

	headers, err := p.headers()
	if err != nil {
		return nil, err
	}

	return http.NewRequest(m, target, version, headers), nil
}

func (p *Parser) startLine() (string, error) {
	raw, err := p.reader.ReadUntilLimit(crlf, p.cfg.Parser.StartLineChunk, p.cfg.Parser.MaxStartLine)
	if err != nil {
		return "", readError("request line", err, status.ErrRequestLineTooLarge)
	}

	if !utf8.Valid(raw) {
		return "", status.ErrFormat
	}

	return uf.B2S(raw[:len(raw)-len(crlf)]), nil
}

func splitStartLine(line string) (m method.Method, target string, version proto.Proto, err error) {
	methodToken, rest, found := strings.Cut(line, " ")
	if !found {
		return m, "", version, status.ErrFormat
	}

	target, versionToken, found := strings.Cut(rest, " ")
	if !found || strings.IndexByte(versionToken, ' ') != -1 {
		return m, "", version, status.ErrFormat
	}

	if m = method.Parse(methodToken); m == method.Unknown {
		return m, "", version, status.ErrFormat
	}

	if version = proto.FromString(versionToken); version == proto.Unknown {
		return m, "", version, status.ErrFormat
	}

	if !version.Supported() {
		return m, "", version, status.UnsupportedVersionError{Proto: version}
	}

	return m, target, version, nil
}

// headers reads everything up to the empty line. The CRLF terminating the request line is
// put back first, so a head without headers at all ends with the very first CRLFCRLF met.
func (p *Parser) headers() (http.Headers, error) {
	p.reader.Unread(crlf)

	limit := p.cfg.Parser.MaxHeaders
	if limit > 0 {
		limit += len(crlf)
	}

	raw, err := p.reader.ReadUntilLimit(crlfcrlf, p.cfg.Parser.HeadersChunk, limit)
	if err != nil {
		return http.Headers{}, readError("headers", err, status.ErrHeaderFieldsTooLarge)
	}

	if !utf8.Valid(raw) {
		return http.Headers{}, status.ErrFormat
	}

	if len(raw) == len(crlfcrlf) {
		return http.NewHeaders(nil), nil
	}

	block := uf.B2S(raw[len(crlf) : len(raw)-len(crlfcrlf)])

	return http.NewHeaders(strings.Split(block, "\r\n")), nil
}

func readError(what string, err, tooLarge error) error {
	switch {
	case errors.Is(err, stash.ErrTooLarge):
		return tooLarge
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%s: %w", what, err)
	default:
		return status.IOError{Err: err}
	}
}
