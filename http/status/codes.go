package status

// Code is the status a response writer would answer a failed request with. Only codes the
// request head can fail with are listed.
type Code uint16

const (
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	RequestTimeout          Code = 408 // RFC 9110, 15.5.9
	RequestURITooLong       Code = 414 // RFC 9110, 15.5.15
	HeaderFieldsTooLarge    Code = 431 // RFC 6585, 5
	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

var texts = map[Code]string{
	BadRequest:              "Bad Request",
	RequestTimeout:          "Request Timeout",
	RequestURITooLong:       "Request URI Too Long",
	HeaderFieldsTooLarge:    "Request Header Fields Too Large",
	InternalServerError:     "Internal Server Error",
	HTTPVersionNotSupported: "HTTP Version Not Supported",
}

// Text returns the reason phrase, or an empty string if the code is unknown.
func Text(code Code) string {
	return texts[code]
}
