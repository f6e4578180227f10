package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

const taskColumns = `id::text, title, start_time, end_time, priority, status, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	query := `
		INSERT INTO tasks (id, title, start_time, end_time, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.Title, opt.StartTime, opt.EndTime, opt.Priority, opt.Status,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask retrieves a single task by id.
// Returns zero-value Task (ID == "") when not found, including malformed ids.
func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	if !validID(id) {
		return task.Task{}, nil
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every task matching the filters, sorted ascending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the user fields of a task and returns the updated row.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	if !validID(opt.ID) {
		return task.Task{}, nil
	}

	query := `
		UPDATE tasks
		SET title = $1, start_time = $2, end_time = $3, priority = $4, status = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query,
		opt.Title, opt.StartTime, opt.EndTime, opt.Priority, opt.Status, opt.ID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task by id and reports whether one was removed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

// Ping checks database connectivity.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(&t.ID, &t.Title, &t.StartTime, &t.EndTime, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, err
	}
	t.StartTime = t.StartTime.UTC()
	t.EndTime = t.EndTime.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
