package importclient

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the archive to upload does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMissingToken indicates the login response carried no token.
var ErrMissingToken = errors.New("login response has no token")

// ErrMissingProcessed indicates the import response carried no processed count.
var ErrMissingProcessed = errors.New("import response has no processed count")

// HTTPError is returned when the API answers with a non-success status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	// Body is the raw response body.
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// ResponseBody returns the raw body of the failed response, if err carries one.
func ResponseBody(err error) (string, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Body, true
	}
	return "", false
}
