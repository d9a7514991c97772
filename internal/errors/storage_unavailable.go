package errors

import "net/http"

var ErrStorageUnavailable = &Exception{
	Message:    "storage operation failed",
	StatusCode: http.StatusInternalServerError,
}
