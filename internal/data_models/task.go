package dto

import "time"

// CreateTaskRequest carries the fields a client may supply when creating a
// task. Pointer fields distinguish "absent" from a zero value so the
// repository can apply defaults only where the client stayed silent.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"createdAt"`
	IsCompleted *bool      `json:"isCompleted"`
	Priority    *int       `json:"priority"`
}

// UpdateTaskRequest is a partial patch; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"createdAt"`
	IsCompleted *bool      `json:"isCompleted"`
	Priority    *int       `json:"priority"`
}

// Empty reports whether the patch changes nothing.
func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.CreatedAt == nil &&
		r.IsCompleted == nil && r.Priority == nil
}

type AutocompleteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
