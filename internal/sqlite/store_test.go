package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylist-app/daylist/pkg/types"
)

// setupStore opens a Store against a temp directory and schedules cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// newTask builds a valid task for insertion tests.
func newTask(id, owner, text string, createdAt time.Time) *types.Task {
	return &types.Task{
		ID:        id,
		OwnerID:   owner,
		Text:      text,
		CreatedAt: createdAt,
	}
}

func TestOpenValidatesConfig(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir(), Database: "../escape.db"})
	assert.ErrorIs(t, err, types.ErrDatabaseInvalid)
}

func TestInsertAndListByOwner(t *testing.T) {
	s := setupStore(t)

	base := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	require.NoError(t, s.Insert(newTask("2", "device_a", "second", base.Add(time.Hour))))
	require.NoError(t, s.Insert(newTask("1", "device_a", "first", base)))
	require.NoError(t, s.Insert(newTask("3", "device_b", "other owner", base)))

	tasks, err := s.ListByOwner("device_a")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Ordered by creation time ascending, not insertion order.
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "2", tasks[1].ID)
	assert.Equal(t, "first", tasks[0].Text)
	assert.False(t, tasks[0].Completed)

	// Stored as epoch milliseconds; the instant round-trips.
	assert.True(t, tasks[0].CreatedAt.Equal(base))
}

func TestListByOwnerScoping(t *testing.T) {
	s := setupStore(t)

	now := time.Now()
	require.NoError(t, s.Insert(newTask("a1", "device_a", "for a", now)))
	require.NoError(t, s.Insert(newTask("b1", "device_b", "for b", now)))

	tasksA, err := s.ListByOwner("device_a")
	require.NoError(t, err)
	tasksB, err := s.ListByOwner("device_b")
	require.NoError(t, err)

	require.Len(t, tasksA, 1)
	require.Len(t, tasksB, 1)
	assert.Equal(t, "a1", tasksA[0].ID)
	assert.Equal(t, "b1", tasksB[0].ID)

	empty, err := s.ListByOwner("device_c")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInsertDuplicateID(t *testing.T) {
	s := setupStore(t)

	now := time.Now()
	require.NoError(t, s.Insert(newTask("dup", "device_a", "original", now)))

	err := s.Insert(newTask("dup", "device_a", "copy", now))
	assert.ErrorIs(t, err, types.ErrDuplicateID)

	// A duplicate from another owner is still a collision: IDs are global.
	err = s.Insert(newTask("dup", "device_b", "copy", now))
	assert.ErrorIs(t, err, types.ErrDuplicateID)
}

func TestInsertRejectsInvalidTask(t *testing.T) {
	s := setupStore(t)
	now := time.Now()

	tests := []struct {
		name    string
		task    *types.Task
		wantErr error
	}{
		{name: "missing id", task: newTask("", "device_a", "text", now), wantErr: types.ErrInvalidID},
		{name: "missing owner", task: newTask("1", "", "text", now), wantErr: types.ErrInvalidOwner},
		{name: "empty text", task: newTask("1", "device_a", "   ", now), wantErr: types.ErrEmptyText},
		{name: "zero created at", task: newTask("1", "device_a", "text", time.Time{}), wantErr: types.ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.Insert(tt.task), tt.wantErr)
		})
	}
}

func TestSetCompleted(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(newTask("1", "device_a", "task", time.Now())))

	require.NoError(t, s.SetCompleted("1", true))
	tasks, err := s.ListByOwner("device_a")
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	require.NoError(t, s.SetCompleted("1", false))
	tasks, err = s.ListByOwner("device_a")
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)
}

func TestSetCompletedMissingID(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.SetCompleted("ghost", true), types.ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(newTask("1", "device_a", "task", time.Now())))

	require.NoError(t, s.Delete("1"))
	// Second delete of the same ID is not an error.
	require.NoError(t, s.Delete("1"))
	// Deleting an ID that never existed is not an error either.
	require.NoError(t, s.Delete("never-existed"))

	tasks, err := s.ListByOwner("device_a")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestInitIdempotentAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Insert(newTask("1", "device_a", "survives reopen", time.Now())))
	// Init on a live store must not destroy data.
	require.NoError(t, s.Init())
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	tasks, err := s.ListByOwner("device_a")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "survives reopen", tasks[0].Text)
}

func TestClosedStore(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Close())
	// Close is idempotent.
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Insert(newTask("1", "device_a", "text", time.Now())), types.ErrStoreClosed)
	_, err := s.ListByOwner("device_a")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, s.SetCompleted("1", true), types.ErrStoreClosed)
	assert.ErrorIs(t, s.Delete("1"), types.ErrStoreClosed)
	assert.ErrorIs(t, s.Init(), types.ErrStoreClosed)
}
