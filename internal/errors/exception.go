package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Exception is an error with a fixed HTTP status. Handlers resolve any
// error chain containing one to its status via StatusCode.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Wrap attaches a cause while keeping the exception's status resolvable
// through the chain.
func (e *Exception) Wrap(cause error) error {
	return fmt.Errorf("%w: %w", e, cause)
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
