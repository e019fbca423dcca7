package http

import (
	"github.com/indigo-web/inlet/http/method"
	"github.com/indigo-web/inlet/http/proto"
)

// Request is a parsed request head. It's never modified after being constructed and is
// owned by whoever serves the connection it came from.
type Request struct {
	method  method.Method
	target  string
	proto   proto.Proto
	headers Headers
}

func NewRequest(m method.Method, target string, p proto.Proto, headers Headers) *Request {
	return &Request{
		method:  m,
		target:  target,
		proto:   p,
		headers: headers,
	}
}

// Method returns the request method. Never method.Unknown for parsed requests.
func (r *Request) Method() method.Method {
	return r.method
}

// Target returns the request target exactly as it was sent, without any decoding or
// validation.
func (r *Request) Target() string {
	return r.target
}

// Proto returns the protocol version. For parsed requests it's always supported.
func (r *Request) Proto() proto.Proto {
	return r.proto
}

func (r *Request) Headers() Headers {
	return r.headers
}

// Body always reports no body, as reading request bodies isn't implemented yet.
func (r *Request) Body() (body []byte, ok bool) {
	return nil, false
}
