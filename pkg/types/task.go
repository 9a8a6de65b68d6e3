package types

import (
	"strings"
	"time"
)

// Task represents a single to-do item owned by one device.
type Task struct {
	ID        string    `json:"id"`         // Unique across all tasks; millisecond-timestamp string.
	OwnerID   string    `json:"owner_id"`   // Device identity the task belongs to.
	Text      string    `json:"text"`       // Non-empty after trimming.
	Completed bool      `json:"completed"`  // Defaults to false at creation.
	CreatedAt time.Time `json:"created_at"` // Set once at creation; sort and bucketing key.
}

// Validate checks that the task is well-formed for insertion.
// Returns a sentinel error from this package on failure.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrInvalidID
	}
	if t.OwnerID == "" {
		return ErrInvalidOwner
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if t.CreatedAt.IsZero() {
		return ErrInvalidData
	}
	return nil
}
