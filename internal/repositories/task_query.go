package repository

import (
	"strings"

	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// sortColumns whitelists the externally addressable sort fields and maps
// them to store columns. Anything else silently falls back to createdAt.
var sortColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"createdAt":   "created_at",
	"isCompleted": "is_completed",
	"priority":    "priority",
}

// TaskQuery is the untrusted, optional parameter set for a filtered read.
// Zero values mean "absent"; normalize fills defaults and clamps bounds.
type TaskQuery struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
	Limit     int
}

// PaginatedTasks is the read envelope. Page and Limit echo the effective,
// normalized values, not necessarily what the caller passed.
type PaginatedTasks struct {
	Tasks      []model.Task `json:"tasks"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

func (q TaskQuery) normalize() TaskQuery {
	if _, ok := sortColumns[q.SortField]; !ok {
		q.SortField = "createdAt"
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// filter narrows db to tasks whose title contains the search text as a
// case-insensitive literal substring. Search is title-only.
func (q TaskQuery) filter(db *gorm.DB) *gorm.DB {
	if q.Search == "" {
		return db
	}
	pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
	return db.Where(`lower(title) LIKE ? ESCAPE '\'`, pattern)
}

// order assumes q has been normalized, so SortField is a known key.
func (q TaskQuery) order() string {
	return sortColumns[q.SortField] + " " + q.SortOrder
}

func (q TaskQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

// escapeLike neutralizes LIKE wildcards so search text always matches
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
