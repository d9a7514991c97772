package errors

import "net/http"

var ErrDuplicateTitle = &Exception{
	Message:    "a task with this title already exists",
	StatusCode: http.StatusBadRequest,
}
