package method

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE}

// names is the only place where a method is bound to its wire token. Both String and
// Parse are driven by it.
var names = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
}

var tokens = func() map[string]Method {
	m := make(map[string]Method, len(List))
	for _, method := range List {
		m[names[method]] = method
	}

	return m
}()

// String returns the canonical wire token. Unknown (or any out-of-range value) results
// in an empty string.
func (m Method) String() string {
	if int(m) >= len(names) {
		return ""
	}

	return names[m]
}

// Parse matches the token exactly, so lower- or mixed-case spellings and extension methods
// result in Unknown.
func Parse(str string) Method {
	return tokens[str]
}

// FromBytes is Parse for raw bytes. The conversion doesn't allocate.
func FromBytes(b []byte) Method {
	return tokens[string(b)]
}
