package sqlite

// Schema DDL for the tasks table. CREATE TABLE IF NOT EXISTS keeps Init
// idempotent: reopening an existing database preserves its rows.
//
// completed is an INTEGER 0/1 boolean; created_at is epoch milliseconds so
// the local calendar day is derived at read time, never baked in at write
// time.
const createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id         TEXT PRIMARY KEY NOT NULL,
    owner_id   TEXT NOT NULL,
    text       TEXT NOT NULL,
    completed  INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks (owner_id);`
