package types

import "errors"

// Store provides persistence for tasks. The SQLite implementation lives in
// internal/sqlite; the controller accepts any Store so tests can substitute
// an in-memory one.
//
// Mutations by ID (SetCompleted, Delete) are global primary-key lookups:
// task IDs are unique across owners and callers only ever hold IDs obtained
// from their own ListByOwner results. Reads are owner-scoped.
type Store interface {
	// Init creates the task table if it does not exist. Idempotent; never
	// destroys existing data.
	Init() error

	// Insert persists a new task. Returns ErrDuplicateID if a task with the
	// same ID already exists.
	Insert(task *Task) error

	// ListByOwner returns every task belonging to ownerID, ordered by
	// CreatedAt ascending.
	ListByOwner(ownerID string) ([]*Task, error)

	// SetCompleted updates the completed flag of the task with the given ID.
	// Returns ErrNotFound if no such task exists.
	SetCompleted(id string, completed bool) error

	// Delete removes the task with the given ID. Deleting a missing ID is
	// not an error.
	Delete(id string) error

	// Close releases the underlying database handle. Idempotent.
	Close() error
}

// Store operation errors.
var (
	ErrNotFound     = errors.New("task not found")
	ErrDuplicateID  = errors.New("task ID already exists")
	ErrStoreClosed  = errors.New("store is closed")
	ErrInvalidID    = errors.New("invalid task ID")
	ErrInvalidOwner = errors.New("owner ID must not be empty")
	ErrInvalidData  = errors.New("invalid task data")
)

// Controller and input validation errors.
var (
	ErrEmptyText      = errors.New("task text must not be empty")
	ErrInvalidDateKey = errors.New("invalid date key, want YYYY-MM-DD")
)
