package postgre

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id         UUID PRIMARY KEY,
	title      TEXT        NOT NULL,
	start_time TIMESTAMPTZ NOT NULL,
	end_time   TIMESTAMPTZ NOT NULL,
	priority   TEXT        NOT NULL,
	status     TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS tasks_status_start_time_idx ON tasks (status, start_time);
CREATE INDEX IF NOT EXISTS tasks_priority_start_time_idx ON tasks (priority, start_time);
`

// EnsureSchema creates the tasks table and its indexes if they do not exist.
func EnsureSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, schema)
	return err
}
