package model

import "time"

const DefaultPriority = 3

// Task is the single managed entity. Title carries a unique index so the
// store rejects duplicates even if two writers race past the service-level
// check.
type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"uniqueIndex;not null" json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	Priority    int       `gorm:"not null;default:3" json:"priority"`
}
