package proto

// Proto is a protocol version as it appears in the last token of a request line. The
// constants are declared in generation order, so comparing two values with < and > compares
// their generations.
type Proto uint8

const (
	Unknown Proto = iota
	HTTP09
	HTTP1
	HTTP11
	HTTP2
	HTTP3
)

// List holds every known version, ascending.
var List = []Proto{HTTP09, HTTP1, HTTP11, HTTP2, HTTP3}

var lut = [...]string{
	HTTP09: "HTTP/0.9",
	HTTP1:  "HTTP/1",
	HTTP11: "HTTP/1.1",
	HTTP2:  "HTTP/2",
	HTTP3:  "HTTP/3",
}

var byToken = func() map[string]Proto {
	m := make(map[string]Proto, len(List))
	for _, p := range List {
		m[lut[p]] = p
	}

	return m
}()

// String returns the canonical token, e.g. "HTTP/1.1". Unknown results in an empty string.
func (p Proto) String() string {
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

// Supported reports whether requests of this version are processed any further. Everything
// else is recognized, but rejected.
func (p Proto) Supported() bool {
	return p == HTTP1 || p == HTTP11
}

// FromString matches the token exactly. Anything that is not one of the canonical tokens,
// including "http/1.1" or "HTTP/1.0", is Unknown.
func FromString(token string) Proto {
	return byToken[token]
}

func FromBytes(raw []byte) Proto {
	return byToken[string(raw)]
}
