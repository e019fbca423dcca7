package dump

import (
	"github.com/indigo-web/inlet/http"
	json "github.com/json-iterator/go"
)

// Request serializes the request head back into its wire form.
func Request(request *http.Request) string {
	var buff []byte

	buff = append(buff, request.Method().String()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Target()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Proto().String()...)
	buff = append(buff, '\r', '\n')

	for _, line := range request.Headers().All() {
		buff = append(buff, line...)
		buff = append(buff, '\r', '\n')
	}

	buff = append(buff, '\r', '\n')

	return string(buff)
}

type view struct {
	Method  string   `json:"method"`
	Target  string   `json:"target"`
	Proto   string   `json:"proto"`
	Headers []string `json:"headers"`
}

// JSON renders the request as a JSON object, mainly for logging purposes.
func JSON(request *http.Request) ([]byte, error) {
	headers := request.Headers().Lines()
	if headers == nil {
		headers = []string{}
	}

	return json.Marshal(view{
		Method:  request.Method().String(),
		Target:  request.Target(),
		Proto:   request.Proto().String(),
		Headers: headers,
	})
}
