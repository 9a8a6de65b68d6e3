// Package sqlite implements the SQLite task store for daylist.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/daylist-app/daylist/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store on top of a local SQLite database file.
// A single *sql.DB is shared for the lifetime of the store; the driver
// serializes access per connection, and the controller is the sole writer.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the data directory if needed, opens the database file, and
// initializes the schema. A failure here means the store is unavailable and
// the application cannot function; callers should treat it as fatal.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, cfg.DatabaseName())
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates the tasks table if it does not exist. Safe to call multiple
// times; never destroys existing data.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(createTasks); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Insert persists a new task. Returns types.ErrDuplicateID if the ID is
// already present. The ID-generation contract makes collisions unlikely, but
// the check is a structural invariant, not an assumption.
func (s *Store) Insert(task *types.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if err := task.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM tasks WHERE id = ?", task.ID).Scan(&exists)
	if err == nil {
		return types.ErrDuplicateID
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking task existence: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO tasks (id, owner_id, text, completed, created_at) VALUES (?, ?, ?, ?, ?)",
		task.ID, task.OwnerID, task.Text, boolToInt(task.Completed), task.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting task %s: %w", task.ID, err)
	}
	return nil
}

// ListByOwner returns all tasks belonging to ownerID ordered by creation
// time ascending.
func (s *Store) ListByOwner(ownerID string) ([]*types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	if ownerID == "" {
		return nil, types.ErrInvalidOwner
	}

	rows, err := s.db.Query(
		"SELECT id, owner_id, text, completed, created_at FROM tasks WHERE owner_id = ? ORDER BY created_at ASC",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for %s: %w", ownerID, err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

// SetCompleted updates the completed flag of the task with the given ID.
// Returns types.ErrNotFound if the ID does not exist; callers that tolerate
// stale IDs treat that as a no-op.
func (s *Store) SetCompleted(id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("UPDATE tasks SET completed = ? WHERE id = ?", boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for task %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the task with the given ID. Idempotent: deleting a missing
// ID succeeds.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if id == "" {
		return types.ErrInvalidID
	}

	if _, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask hydrates one row into a *types.Task.
func scanTask(row rowScanner) (*types.Task, error) {
	var (
		task      types.Task
		completed int
		createdAt int64
	)
	if err := row.Scan(&task.ID, &task.OwnerID, &task.Text, &completed, &createdAt); err != nil {
		return nil, err
	}
	task.Completed = completed != 0
	task.CreatedAt = time.UnixMilli(createdAt)
	return &task, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
