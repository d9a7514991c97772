package errors

import "net/http"

var ErrCompletionUnavailable = &Exception{
	Message:    "completion service unavailable",
	StatusCode: http.StatusServiceUnavailable,
}
