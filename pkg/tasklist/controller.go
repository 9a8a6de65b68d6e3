// Package tasklist implements the in-memory task list controller that sits
// between the presentation layer and the task store.
package tasklist

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/daylist-app/daylist/internal/dates"
	"github.com/daylist-app/daylist/pkg/types"
)

// Controller owns the authoritative in-memory view of all tasks belonging to
// one device. Every mutation re-runs a full reload rather than patching the
// cache; per-device task counts are small enough that simplicity wins over
// latency.
//
// Mutations are serialized by an internal mutex. On storage failure the
// error is logged and returned to the caller, and the cache keeps its last
// successfully loaded value.
type Controller struct {
	mu      sync.Mutex
	store   types.Store
	ownerID string
	logger  *log.Logger

	tasks   []*types.Task
	loading bool
	lastID  int64
}

// New creates a Controller for the given owner. The store is injected by
// the composition root. A nil logger falls back to the package default.
func New(store types.Store, ownerID string, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{store: store, ownerID: ownerID, logger: logger}
}

// Add trims the text and inserts a new task created now, then reloads.
// Empty or whitespace-only text is a silent no-op: the store is not called,
// no reload happens, and the returned task is nil.
func (c *Controller) Add(text string) (*types.Task, error) {
	return c.add(text, time.Now())
}

// AddForDate inserts a new task dated at local midnight of the given
// YYYY-MM-DD key, then reloads. Used by the day-detail "add task for this
// date" action. Empty text is a no-op as in Add.
func (c *Controller) AddForDate(text, dateKey string) (*types.Task, error) {
	createdAt, err := dates.ParseKey(dateKey)
	if err != nil {
		return nil, err
	}
	return c.add(text, createdAt)
}

func (c *Controller) add(text string, createdAt time.Time) (*types.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	task := &types.Task{
		ID:        c.nextID(),
		OwnerID:   c.ownerID,
		Text:      trimmed,
		Completed: false,
		CreatedAt: createdAt,
	}
	if err := c.store.Insert(task); err != nil {
		c.logger.Error("add task failed", "err", err)
		return nil, fmt.Errorf("add task: %w", err)
	}
	if err := c.reloadLocked(); err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the completed flag of the task with the given ID and reloads.
// An ID absent from the cache is a no-op, even if it still exists in the
// store; cache and store never diverge under single-threaded sequential use.
// A task deleted out from under us between lookup and write is also treated
// as a no-op.
func (c *Controller) Toggle(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var current *types.Task
	for _, task := range c.tasks {
		if task.ID == id {
			current = task
			break
		}
	}
	if current == nil {
		return nil
	}

	if err := c.store.SetCompleted(id, !current.Completed); err != nil {
		if err == types.ErrNotFound {
			return nil
		}
		c.logger.Error("toggle task failed", "id", id, "err", err)
		return fmt.Errorf("toggle task %s: %w", id, err)
	}
	return c.reloadLocked()
}

// Delete removes the task with the given ID and reloads. Idempotent:
// deleting an unknown ID succeeds.
func (c *Controller) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(id); err != nil {
		c.logger.Error("delete task failed", "id", id, "err", err)
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return c.reloadLocked()
}

// Reload fetches all tasks for the owner and replaces the cache wholesale.
func (c *Controller) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloadLocked()
}

// reloadLocked performs the fetch-and-replace. The caller must hold c.mu.
// On failure the cache keeps its last successful value.
func (c *Controller) reloadLocked() error {
	c.loading = true
	defer func() { c.loading = false }()

	tasks, err := c.store.ListByOwner(c.ownerID)
	if err != nil {
		c.logger.Error("reload tasks failed", "err", err)
		return fmt.Errorf("reload tasks: %w", err)
	}
	c.tasks = tasks
	return nil
}

// Tasks returns the cached task list, ordered by creation time ascending.
// The returned slice is a copy; the tasks it points to are shared.
func (c *Controller) Tasks() []*types.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*types.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Loading reports whether a reload is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// nextID returns a new task ID: the current time in milliseconds as a
// decimal string, bumped past the previous ID when two creations land on
// the same millisecond. The caller must hold c.mu.
func (c *Controller) nextID() string {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}
