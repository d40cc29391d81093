package connection

import (
	"fmt"
	"net/http"
)

// HTTPError is returned for every response whose status is not 200 OK.
type HTTPError struct {
	StatusCode int
	Body       string
	Method     string
	URL        string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
